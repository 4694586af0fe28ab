package journal

import (
	"fmt"

	"github.com/cleared-dev/ledger/internal/id"
	"github.com/cleared-dev/ledger/internal/model"
)

// ValidationError describes a malformed journal line.
type ValidationError struct {
	Line        int // zero-based index into the journal
	Ref         string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("line %d [%s]: %s", e.Line, e.Ref, e.Description)
}

// Check verifies that entries form a well-paired general journal: an even
// number of lines, each pair a debit line followed by a credit line of the
// same entry and amount, with date and description only on the debit line.
func Check(entries []model.JournalEntry) []ValidationError {
	var errs []ValidationError

	if len(entries)%2 != 0 {
		last := len(entries) - 1
		errs = append(errs, ValidationError{
			Line:        last,
			Ref:         entries[last].Ref,
			Description: "unpaired journal line",
		})
		entries = entries[:last]
	}

	for i := 0; i < len(entries); i += 2 {
		debit, credit := entries[i], entries[i+1]

		if !debit.Debit.Valid || debit.Credit.Valid {
			errs = append(errs, ValidationError{Line: i, Ref: debit.Ref, Description: "first line of an entry must carry only a debit"})
		}
		if !credit.Credit.Valid || credit.Debit.Valid {
			errs = append(errs, ValidationError{Line: i + 1, Ref: credit.Ref, Description: "second line of an entry must carry only a credit"})
		}
		if !credit.Date.IsZero() || credit.Description != "" {
			errs = append(errs, ValidationError{Line: i + 1, Ref: credit.Ref, Description: "credit line must not carry date or description"})
		}
		if id.EntryGroup(debit.Ref) != id.EntryGroup(credit.Ref) {
			errs = append(errs, ValidationError{
				Line:        i + 1,
				Ref:         credit.Ref,
				Description: fmt.Sprintf("credit line belongs to %q, not %q", id.EntryGroup(credit.Ref), id.EntryGroup(debit.Ref)),
			})
		}
		if debit.Debit.Valid && credit.Credit.Valid {
			if !debit.Debit.Decimal.Equal(credit.Credit.Decimal) {
				errs = append(errs, ValidationError{
					Line:        i,
					Ref:         id.EntryGroup(debit.Ref),
					Description: fmt.Sprintf("debit (%s) != credit (%s)", formatAmount(debit.Debit.Decimal), formatAmount(credit.Credit.Decimal)),
				})
			}
			if !debit.Debit.Decimal.IsPositive() {
				errs = append(errs, ValidationError{Line: i, Ref: debit.Ref, Description: "amount must be positive"})
			}
		}
		if debit.AccountName == credit.AccountName {
			errs = append(errs, ValidationError{Line: i, Ref: id.EntryGroup(debit.Ref), Description: "debit and credit lines name the same account"})
		}
	}

	return errs
}
