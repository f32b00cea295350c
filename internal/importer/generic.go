package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// GenericParser parses a plain "date,description,amount" CSV with a
// header row. Dates are YYYY-MM-DD.
type GenericParser struct{}

const (
	genericDateFormat = "2006-01-02"
	genericNumFields  = 3
	genericColDate    = 0
	genericColDesc    = 1
	genericColAmount  = 2
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads the CSV and returns its rows.
func (p *GenericParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseGenericRow(rec []string) (Row, error) {
	date, err := time.Parse(genericDateFormat, rec[genericColDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", rec[genericColDate], err)
	}

	amount, err := decimal.NewFromString(rec[genericColAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[genericColAmount], err)
	}

	return Row{
		Date:        date,
		Description: rec[genericColDesc],
		Amount:      amount,
	}, nil
}
