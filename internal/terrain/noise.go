// Package terrain generates the world's voxels deterministically from
// layered value noise. Every function is a pure function of its inputs
// and the generator seed, so chunks can be generated in any order and
// on any number of workers with identical results.
package terrain

import "math"

// Integer mixing constants. Together with the xor-shift avalanche below
// they define the world layout for a given seed; changing any of them
// changes every generated world.
const (
	hashX    = 374761393
	hashZ    = 668265263
	hashSeed = 982451653
	hashMix  = 1274126177
)

// hash maps an integer lattice point to [0, 1). int32 arithmetic wraps,
// which is exactly what the mixing relies on.
func (g *Generator) hash(x, z int32) float64 {
	n := x*hashX + z*hashZ + g.seed*hashSeed
	n = (n ^ (n >> 13)) * hashMix
	return float64(uint32(n^(n>>16))) / float64(math.MaxUint32)
}

// smoothstep is the 3t^2 - 2t^3 fade curve.
func smoothstep(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// valueNoise interpolates the four surrounding lattice hashes with
// smoothstep weights, giving continuous band-limited noise in [0, 1).
func (g *Generator) valueNoise(x, z float64) float64 {
	xf := math.Floor(x)
	zf := math.Floor(z)
	xi := int32(xf)
	zi := int32(zf)

	v00 := g.hash(xi, zi)
	v10 := g.hash(xi+1, zi)
	v01 := g.hash(xi, zi+1)
	v11 := g.hash(xi+1, zi+1)

	u := smoothstep(x - xf)
	v := smoothstep(z - zf)

	return lerp(lerp(v00, v10, u), lerp(v01, v11, u), v)
}

// fbm sums octaves of value noise, halving amplitude and doubling
// frequency each octave, normalized back to [0, 1).
func (g *Generator) fbm(x, z float64, octaves int) float64 {
	value := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0

	for i := 0; i < octaves; i++ {
		value += amplitude * g.valueNoise(x*frequency, z*frequency)
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}

	return value / maxValue
}
