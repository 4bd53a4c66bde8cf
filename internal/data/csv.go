// Package data loads asset panels from CSV and writes estimation results
// back out. The input layout is long-form: one row per (date, symbol)
// with the asset's return, market cap, and sector label.
package data

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"factormodel/internal/domain"
	"factormodel/internal/styles"
)

type panelRow struct {
	Date      string          `csv:"date"`
	Symbol    string          `csv:"symbol"`
	Return    decimal.Decimal `csv:"return"`
	MarketCap decimal.Decimal `csv:"market_cap"`
	Sector    string          `csv:"sector"`
}

// LoadPanel reads a long-form panel CSV and assembles per-date cross
// sections. Sector labels are one-hot encoded against the sorted set of
// sectors seen anywhere in the file, so every cross section shares the
// same sector columns. Symbols within a date are sorted, dates ascend.
func LoadPanel(r io.Reader) (domain.Panel, error) {
	rows := []panelRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse panel csv: %w", err)
	}

	sectorSet := map[string]bool{}
	type assetRow struct {
		symbol    string
		ret       float64
		marketCap float64
		sector    string
	}
	byDate := map[time.Time][]assetRow{}
	seen := map[string]bool{}
	for i, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q on row %d: %w", row.Date, i+1, err)
		}
		if row.Symbol == "" {
			return nil, fmt.Errorf("missing symbol on row %d", i+1)
		}
		key := row.Date + "|" + row.Symbol
		if seen[key] {
			return nil, fmt.Errorf("duplicate observation for %s on %s", row.Symbol, row.Date)
		}
		seen[key] = true

		sectorSet[row.Sector] = true
		byDate[date] = append(byDate[date], assetRow{
			symbol:    row.Symbol,
			ret:       row.Return.InexactFloat64(),
			marketCap: row.MarketCap.InexactFloat64(),
			sector:    row.Sector,
		})
	}

	sectorNames := make([]string, 0, len(sectorSet))
	for sector := range sectorSet {
		sectorNames = append(sectorNames, sector)
	}
	sort.Strings(sectorNames)
	sectorIndex := map[string]int{}
	columnNames := make([]string, len(sectorNames))
	for i, sector := range sectorNames {
		sectorIndex[sector] = i
		columnNames[i] = "sector_" + sector
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	panel := make(domain.Panel, 0, len(dates))
	for _, date := range dates {
		assets := byDate[date]
		sort.Slice(assets, func(i, j int) bool { return assets[i].symbol < assets[j].symbol })

		cs := domain.CrossSection{
			Date:        date,
			Symbols:     make([]string, len(assets)),
			Returns:     make([]float64, len(assets)),
			MarketCaps:  make([]float64, len(assets)),
			SectorNames: columnNames,
			Sectors:     make([][]float64, len(assets)),
		}
		for i, asset := range assets {
			cs.Symbols[i] = asset.symbol
			cs.Returns[i] = asset.ret
			cs.MarketCaps[i] = asset.marketCap
			cs.Sectors[i] = make([]float64, len(columnNames))
			cs.Sectors[i][sectorIndex[asset.sector]] = 1
		}
		panel = append(panel, cs)
	}

	return panel, nil
}

// AttachStyleScores adds one style column to every cross section in the
// panel. Assets without a score on a date get zero, the neutral value
// after cross-sectional standardization.
func AttachStyleScores(panel domain.Panel, name string, scores []styles.Score) {
	byKey := map[string]float64{}
	for _, s := range scores {
		byKey[s.Date.Format(time.DateOnly)+"|"+s.Symbol] = s.Score
	}

	for i := range panel {
		cs := &panel[i]
		cs.StyleNames = append(cs.StyleNames, name)
		dateKey := cs.Date.Format(time.DateOnly)
		for j, symbol := range cs.Symbols {
			if len(cs.Styles) <= j {
				cs.Styles = append(cs.Styles, nil)
			}
			cs.Styles[j] = append(cs.Styles[j], byKey[dateKey+"|"+symbol])
		}
	}
}

type factorReturnRow struct {
	Date   string  `csv:"date"`
	Factor string  `csv:"factor"`
	Kind   string  `csv:"kind"`
	Return float64 `csv:"return"`
}

type residualReturnRow struct {
	Date     string  `csv:"date"`
	Symbol   string  `csv:"symbol"`
	Residual float64 `csv:"residual"`
}

func WriteFactorReturns(w io.Writer, records []domain.FactorReturn) error {
	rows := make([]factorReturnRow, len(records))
	for i, record := range records {
		rows[i] = factorReturnRow{
			Date:   record.Date.Format(time.DateOnly),
			Factor: record.Factor,
			Kind:   string(record.Kind),
			Return: record.Return,
		}
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write factor returns csv: %w", err)
	}
	return nil
}

func WriteResidualReturns(w io.Writer, records []domain.ResidualReturn) error {
	rows := make([]residualReturnRow, len(records))
	for i, record := range records {
		rows[i] = residualReturnRow{
			Date:     record.Date.Format(time.DateOnly),
			Symbol:   record.Symbol,
			Residual: record.Residual,
		}
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write residual returns csv: %w", err)
	}
	return nil
}
