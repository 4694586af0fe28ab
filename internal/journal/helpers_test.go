package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func testTx(ref, debit, credit, amount string) model.Transaction {
	return model.Transaction{
		Ref:           ref,
		Date:          date(2025, 1, 15),
		Description:   "Owner investment",
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        dec(amount),
	}
}
