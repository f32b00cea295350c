// Package importer replays bank statement CSV files into the ledger:
// credits become deposits, debits become external transfers.
package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one parsed statement row. Negative amounts are money leaving
// the account.
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// Parser converts a statement file into rows.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GenericParser{})
	return r
}

// Ledger is the slice of the ledger store the importer drives.
type Ledger interface {
	Deposit(to string, amount decimal.Decimal, description string) error
	Transfer(from, to string, amount decimal.Decimal, description string, external bool, externalName string) error
}

// Result summarizes an import run.
type Result struct {
	Applied int
	Skipped []error
}

// Apply replays rows against account. Rows that fail a business check
// (e.g. a debit the balance cannot cover) are skipped and reported;
// the rest still apply.
func Apply(l Ledger, account string, rows []Row) Result {
	var res Result
	for i, row := range rows {
		var err error
		if row.Amount.IsNegative() {
			err = l.Transfer(account, "", row.Amount.Abs(), row.Description, true, "")
		} else {
			err = l.Deposit(account, row.Amount, row.Description)
		}
		if err != nil {
			res.Skipped = append(res.Skipped, fmt.Errorf("row %d (%s): %w", i+1, row.Description, err))
			continue
		}
		res.Applied++
	}
	return res
}
