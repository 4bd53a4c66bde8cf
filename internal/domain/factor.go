package domain

import "time"

// FactorKind tags a factor return record with the part of the model
// it came from. The set is closed: market, sector, style.
type FactorKind string

const (
	FactorKind_Market FactorKind = "market"
	FactorKind_Sector FactorKind = "sector"
	FactorKind_Style  FactorKind = "style"
)

// FactorReturn is one estimated factor return on one date.
type FactorReturn struct {
	Date   time.Time
	Factor string
	Kind   FactorKind
	Return float64
}

// ResidualReturn is the idiosyncratic return left over for one asset
// on one date after the factor model has been fit.
type ResidualReturn struct {
	Date     time.Time
	Symbol   string
	Residual float64
}
