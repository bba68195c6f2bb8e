package storage

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/splitledger/splitledger/internal/ledger"
)

// csvHeader is the fixed header row of an expense export.
var csvHeader = []string{"Date", "Description", "Amount", "Payer", "Participants"}

// WriteCSV writes the expenses as CSV: one row per expense, participants
// joined with ", " into a single field.
func WriteCSV(w io.Writer, expenses []ledger.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return &PersistenceError{Op: "export csv", Err: err}
	}
	for _, e := range expenses {
		row := []string{
			e.Date,
			e.Description,
			e.Amount.String(),
			e.Payer,
			strings.Join(e.Participants, ", "),
		}
		if err := cw.Write(row); err != nil {
			return &PersistenceError{Op: "export csv", Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &PersistenceError{Op: "export csv", Err: err}
	}
	return nil
}

// ExportCSV writes the expenses to a CSV file at path.
func ExportCSV(path string, expenses []ledger.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return &PersistenceError{Op: "export csv", Err: err}
	}
	if err := WriteCSV(f, expenses); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &PersistenceError{Op: "export csv", Err: err}
	}
	return nil
}
