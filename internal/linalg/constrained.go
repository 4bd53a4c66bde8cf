package linalg

type ConstrainedWLSResult struct {
	MarketReturn  float64
	SectorReturns []float64
	StyleReturns  []float64
	Residuals     []float64
}

// ConstrainedWLS estimates market, sector, and style returns for one
// cross-section while constraining the sector returns to sum to zero.
//
// An all-ones market column plus a full one-hot sector block is linearly
// dependent, so the unconstrained system is unidentifiable. The constraint
// is imposed by a change of variables: drop the last sector column and
// replace the remaining k-1 columns with their difference from it. The full
// sector vector is then reconstructed with the last entry set to the
// negated sum of the others, which makes the zero sum exact rather than
// approximate.
//
// weights are expected to be pre-transformed (typically sqrt market cap).
// styles may be nil when the model has no style factors.
func ConstrainedWLS(y, weights []float64, sectors, styles [][]float64) (*ConstrainedWLSResult, error) {
	n := len(y)
	if n == 0 {
		return nil, ErrEmptyData
	}
	if len(weights) != n {
		return nil, DimensionMismatchError{Expected: n, Actual: len(weights), Context: "weights"}
	}
	if len(sectors) != n {
		return nil, DimensionMismatchError{Expected: n, Actual: len(sectors), Context: "sector exposures"}
	}
	if styles != nil && len(styles) != n {
		return nil, DimensionMismatchError{Expected: n, Actual: len(styles), Context: "style exposures"}
	}

	numSectors := len(sectors[0])
	if numSectors == 0 {
		return nil, InvalidConfigurationError{Message: "must have at least one sector"}
	}
	for i := range sectors {
		if len(sectors[i]) != numSectors {
			return nil, DimensionMismatchError{Expected: numSectors, Actual: len(sectors[i]), Context: "sector exposures row"}
		}
	}

	numStyles := 0
	if styles != nil {
		numStyles = len(styles[0])
		for i := range styles {
			if len(styles[i]) != numStyles {
				return nil, DimensionMismatchError{Expected: numStyles, Actual: len(styles[i]), Context: "style exposures row"}
			}
		}
	}

	// reduced design: [1 | S_j - S_k for j < k | styles]
	numCols := 1 + (numSectors - 1) + numStyles
	x := make([][]float64, n)
	for i := 0; i < n; i++ {
		x[i] = make([]float64, numCols)
		x[i][0] = 1
		for j := 0; j < numSectors-1; j++ {
			x[i][1+j] = sectors[i][j] - sectors[i][numSectors-1]
		}
		for j := 0; j < numStyles; j++ {
			x[i][1+(numSectors-1)+j] = styles[i][j]
		}
	}

	result, err := WeightedLeastSquares(y, x, weights)
	if err != nil {
		return nil, err
	}

	sectorReturns := make([]float64, numSectors)
	var freeSum float64
	for j := 0; j < numSectors-1; j++ {
		sectorReturns[j] = result.Coefficients[1+j]
		freeSum += result.Coefficients[1+j]
	}
	sectorReturns[numSectors-1] = -freeSum

	styleReturns := make([]float64, numStyles)
	copy(styleReturns, result.Coefficients[1+(numSectors-1):])

	return &ConstrainedWLSResult{
		MarketReturn:  result.Coefficients[0],
		SectorReturns: sectorReturns,
		StyleReturns:  styleReturns,
		Residuals:     result.Residuals,
	}, nil
}
