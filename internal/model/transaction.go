package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one balanced movement of Amount from CreditAccount to
// DebitAccount. Accounts are referenced by name; the chart owns their state.
type Transaction struct {
	ID            uuid.UUID
	Ref           string // "YYYY-MM-NNN", sequence within the month of Date
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}

// Touches reports whether the transaction debits or credits the named account.
func (t Transaction) Touches(account string) bool {
	return t.DebitAccount == account || t.CreditAccount == account
}
