package plant

import "math"

const (
	vecEpsilon = 1e-6
	deg2Rad    = float32(math.Pi / 180)
)

func powf(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

func sqrtf(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
