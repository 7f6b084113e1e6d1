package core

// NeutralIntensity is the intensity reported for unpowered tiles.
// Renderers draw it with their fixed "off" colour.
const NeutralIntensity = 0.0

// Intensity maps a power level to a brightness in [0, 1].
// Powered tiles scale linearly with power/radius; unpowered tiles and
// non-positive radii yield NeutralIntensity.
func Intensity(power, radius int) float64 {
	if power <= 0 || radius <= 0 {
		return NeutralIntensity
	}
	v := float64(power) / float64(radius)
	if v > 1 {
		return 1
	}
	return v
}

// Shade buckets an intensity into one of n steps, 0 meaning unpowered and
// n-1 the brightest. Used by renderers with a fixed palette.
func Shade(power, radius, n int) int {
	if n <= 1 || power <= 0 || radius <= 0 {
		return 0
	}
	i := Intensity(power, radius)
	step := int(i*float64(n-1) + 0.5)
	if step < 1 {
		step = 1
	}
	if step > n-1 {
		step = n - 1
	}
	return step
}
