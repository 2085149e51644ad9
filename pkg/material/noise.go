package material

import "math"

// Noise perturbs pattern lookups. At returns a raw value roughly in
// [-1, 1]; Jitter3D displaces all three coordinates by scaled noise,
// sampling at z offsets so the axes move independently.
type Noise interface {
	At(x, y, z float64) float64
	Jitter3D(x, y, z float64) (float64, float64, float64)
}

// permutation is the classic reference table used by simplex noise,
// duplicated so indexing never needs a modulo.
var permutation = buildPermutation()

func buildPermutation() [512]int {
	base := [256]int{
		151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
		140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
		247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
		57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
		74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
		60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
		65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
		200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
		52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
		207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
		119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
		129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
		218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
		81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
		184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
		222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	}
	var p [512]int
	for i := 0; i < 512; i++ {
		p[i] = base[i&255]
	}
	return p
}

// grad picks one of twelve gradient directions from the hash and
// returns its dot product with the offset vector.
func grad(hash int, x, y, z float64) float64 {
	switch hash & 0xF {
	case 0x0:
		return x + y
	case 0x1:
		return -x + y
	case 0x2:
		return x - y
	case 0x3:
		return -x - y
	case 0x4:
		return x + z
	case 0x5:
		return -x + z
	case 0x6:
		return x - z
	case 0x7:
		return -x - z
	case 0x8:
		return y + z
	case 0x9:
		return -y + z
	case 0xA:
		return y - z
	case 0xB:
		return -y - z
	case 0xC:
		return y + x
	case 0xD:
		return -y + z
	case 0xE:
		return y - x
	default:
		return -y - z
	}
}

// SimplexNoise is Ken Perlin's 3D simplex noise
type SimplexNoise struct {
	Scale float64
}

// NewSimplexNoise creates simplex noise whose jitter is scaled by scale
func NewSimplexNoise(scale float64) SimplexNoise {
	return SimplexNoise{Scale: scale}
}

// At returns the noise value at the given point, roughly in [-1, 1]
func (SimplexNoise) At(x, y, z float64) float64 {
	const (
		f3 = 1.0 / 3.0
		g3 = 1.0 / 6.0
	)

	// Skew the input space to find the containing simplex cell.
	s := (x + y + z) * f3
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))
	k := int(math.Floor(z + s))

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Rank the offsets to pick the simplex the point falls in.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255

	var n0, n1, n2, n3 float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad(permutation[ii+permutation[jj+permutation[kk]]], x0, y0, z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad(permutation[ii+i1+permutation[jj+j1+permutation[kk+k1]]], x1, y1, z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad(permutation[ii+i2+permutation[jj+j2+permutation[kk+k2]]], x2, y2, z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * grad(permutation[ii+1+permutation[jj+1+permutation[kk+1]]], x3, y3, z3)
	}

	// Scale the sum so the result stays within [-1, 1].
	return 32 * (n0 + n1 + n2 + n3)
}

// Jitter3D displaces the point by scaled simplex noise
func (n SimplexNoise) Jitter3D(x, y, z float64) (float64, float64, float64) {
	return x + n.At(x, y, z)*n.Scale,
		y + n.At(x, y, z+1)*n.Scale,
		z + n.At(x, y, z+2)*n.Scale
}

// FractalNoise sums successive octaves of simplex noise, doubling the
// frequency and halving the amplitude at each step.
type FractalNoise struct {
	Scale   float64
	Octaves int
	base    SimplexNoise
}

// NewFractalNoise creates fractal noise with the given scale and octave count
func NewFractalNoise(scale float64, octaves int) FractalNoise {
	return FractalNoise{Scale: scale, Octaves: octaves}
}

// At returns the normalized octave sum at the given point
func (f FractalNoise) At(x, y, z float64) float64 {
	const (
		lacunarity  = 2.0
		persistence = 0.5
	)

	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	maxValue := 0.0
	for o := 0; o < f.Octaves; o++ {
		total += f.base.At(x*frequency, y*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total / maxValue
}

// Jitter3D displaces the point by scaled fractal noise
func (f FractalNoise) Jitter3D(x, y, z float64) (float64, float64, float64) {
	return x + f.At(x, y, z)*f.Scale,
		y + f.At(x, y, z+1)*f.Scale,
		z + f.At(x, y, z+2)*f.Scale
}
