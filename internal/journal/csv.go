package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// Header is the CSV header for an exported general journal.
const Header = "ref,date,description,account,debit,credit"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colRef     = 0
	colDate    = 1
	colDesc    = 2
	colAccount = 3
	colDebit   = 4
	colCredit  = 5
)

// WriteEntries writes the general journal as CSV (including header).
// Absent cells are written empty.
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadEntries reads a journal CSV written by WriteEntries and checks its pairing.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.JournalEntry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}

	if verrs := Check(entries); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("invalid journal: %s", strings.Join(msgs, "; "))
	}
	return entries, nil
}

// MarshalEntry converts a JournalEntry to a CSV row.
func MarshalEntry(e model.JournalEntry) []string {
	row := make([]string, numFields)
	row[colRef] = e.Ref
	if !e.Date.IsZero() {
		row[colDate] = e.Date.Format(dateFormat)
	}
	row[colDesc] = e.Description
	row[colAccount] = e.AccountName
	if e.Debit.Valid {
		row[colDebit] = formatAmount(e.Debit.Decimal)
	}
	if e.Credit.Valid {
		row[colCredit] = formatAmount(e.Credit.Decimal)
	}
	return row
}

// formatAmount writes at least two decimal places and never rounds.
func formatAmount(d decimal.Decimal) string {
	places := int32(2)
	if exp := -d.Exponent(); exp > places {
		places = exp
	}
	return d.StringFixed(places)
}

// UnmarshalEntry converts a CSV row to a JournalEntry.
func UnmarshalEntry(record []string) (model.JournalEntry, error) {
	if len(record) != numFields {
		return model.JournalEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var e model.JournalEntry
	e.Ref = record[colRef]
	e.Description = record[colDesc]
	e.AccountName = record[colAccount]

	if record[colDate] != "" {
		date, err := time.Parse(dateFormat, record[colDate])
		if err != nil {
			return model.JournalEntry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
		e.Date = date
	}

	if record[colDebit] != "" {
		debit, err := decimal.NewFromString(record[colDebit])
		if err != nil {
			return model.JournalEntry{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
		e.Debit = decimal.NewNullDecimal(debit)
	}

	if record[colCredit] != "" {
		credit, err := decimal.NewFromString(record[colCredit])
		if err != nil {
			return model.JournalEntry{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
		e.Credit = decimal.NewNullDecimal(credit)
	}

	return e, nil
}
