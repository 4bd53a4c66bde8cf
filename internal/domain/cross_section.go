package domain

import (
	"time"

	"factormodel/internal/linalg"
)

// CrossSection holds one date's worth of aligned observations. All
// slices and matrices share the same row ordering: row i everywhere
// belongs to Symbols[i].
type CrossSection struct {
	Date       time.Time
	Symbols    []string
	Returns    []float64
	MarketCaps []float64

	// one-hot (or fractional) sector exposures, n x len(SectorNames)
	SectorNames []string
	Sectors     [][]float64

	// continuous style exposures, n x len(StyleNames)
	StyleNames []string
	Styles     [][]float64
}

func (cs CrossSection) NumAssets() int {
	return len(cs.Symbols)
}

func (cs CrossSection) NumSectors() int {
	return len(cs.SectorNames)
}

func (cs CrossSection) NumStyles() int {
	return len(cs.StyleNames)
}

// FactorNames lists the factor names this cross-section will produce,
// in output order: market, then sectors, then styles.
func (cs CrossSection) FactorNames() []string {
	names := make([]string, 0, 1+len(cs.SectorNames)+len(cs.StyleNames))
	names = append(names, "market")
	names = append(names, cs.SectorNames...)
	names = append(names, cs.StyleNames...)
	return names
}

// Validate checks that every slice and matrix row is aligned to Symbols.
// A nil style matrix with no style names is valid; a ragged or missing
// block is a DimensionMismatch.
func (cs CrossSection) Validate() error {
	n := cs.NumAssets()
	if len(cs.Returns) != n {
		return linalg.DimensionMismatchError{Expected: n, Actual: len(cs.Returns), Context: "returns"}
	}
	if len(cs.MarketCaps) != n {
		return linalg.DimensionMismatchError{Expected: n, Actual: len(cs.MarketCaps), Context: "market caps"}
	}
	if len(cs.Sectors) != n {
		return linalg.DimensionMismatchError{Expected: n, Actual: len(cs.Sectors), Context: "sector exposures"}
	}
	for i := range cs.Sectors {
		if len(cs.Sectors[i]) != cs.NumSectors() {
			return linalg.DimensionMismatchError{Expected: cs.NumSectors(), Actual: len(cs.Sectors[i]), Context: "sector exposures row"}
		}
	}
	if cs.NumStyles() > 0 || cs.Styles != nil {
		if len(cs.Styles) != n {
			return linalg.DimensionMismatchError{Expected: n, Actual: len(cs.Styles), Context: "style exposures"}
		}
		for i := range cs.Styles {
			if len(cs.Styles[i]) != cs.NumStyles() {
				return linalg.DimensionMismatchError{Expected: cs.NumStyles(), Actual: len(cs.Styles[i]), Context: "style exposures row"}
			}
		}
	}
	return nil
}

// Panel is an ordered sequence of cross-sections, one per date.
type Panel []CrossSection

func (p Panel) Dates() []time.Time {
	dates := make([]time.Time, len(p))
	for i, cs := range p {
		dates[i] = cs.Date
	}
	return dates
}
