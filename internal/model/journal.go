package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a single line in the general journal. Each transaction
// yields two lines: the debit line carries the date and description, the
// credit line carries only the account and amount.
type JournalEntry struct {
	Ref         string    // "YYYY-MM-NNNa" for the debit line, "...b" for the credit line
	Date        time.Time //nolint:revive // zero on the credit line
	Description string    //nolint:revive // empty on the credit line
	AccountName string
	Debit       decimal.NullDecimal // invalid on the credit line
	Credit      decimal.NullDecimal // invalid on the debit line
}

// IsDebit reports whether the entry is the debit line of its transaction.
func (e JournalEntry) IsDebit() bool {
	return e.Debit.Valid
}

// Amount returns whichever side of the entry is present.
func (e JournalEntry) Amount() decimal.Decimal {
	if e.Debit.Valid {
		return e.Debit.Decimal
	}
	return e.Credit.Decimal
}
