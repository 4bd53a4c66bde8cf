package panelutil

import "math"

// ExpWeights generates exponentially decaying weights over a trailing
// window, most recent first, normalized to sum to 1. A zero window or
// half-life yields all zeros.
func ExpWeights(window, halfLife int) []float64 {
	weights := make([]float64, window)
	if window == 0 || halfLife == 0 {
		return weights
	}

	decay := math.Pow(0.5, 1/float64(halfLife))
	var total float64
	for i := 0; i < window; i++ {
		weights[i] = math.Pow(decay, float64(i))
		total += weights[i]
	}

	if total > 0 {
		for i := range weights {
			weights[i] /= total
		}
	}

	return weights
}
