package journal

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/id"
	"github.com/cleared-dev/ledger/internal/model"
)

// Derive projects a transaction onto its two general-journal lines, debit
// line first. Only the debit line carries the date and description.
func Derive(tx model.Transaction) [2]model.JournalEntry {
	return [2]model.JournalEntry{
		{
			Ref:         id.FormatLegID(tx.Ref, 0),
			Date:        tx.Date,
			Description: tx.Description,
			AccountName: tx.DebitAccount,
			Debit:       decimal.NewNullDecimal(tx.Amount),
		},
		{
			Ref:         id.FormatLegID(tx.Ref, 1),
			AccountName: tx.CreditAccount,
			Credit:      decimal.NewNullDecimal(tx.Amount),
		},
	}
}

// DeriveAll derives the journal for transactions in order.
func DeriveAll(txs []model.Transaction) []model.JournalEntry {
	entries := make([]model.JournalEntry, 0, 2*len(txs))
	for _, tx := range txs {
		pair := Derive(tx)
		entries = append(entries, pair[0], pair[1])
	}
	return entries
}
