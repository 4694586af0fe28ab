package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(accounts.DefaultChart())
}

func record(t *testing.T, e *Engine, debit, credit, amount string) model.Transaction {
	t.Helper()
	tx, err := e.RecordTransaction(RecordParams{
		Date:          date(2025, 1, 15),
		Description:   debit + " / " + credit,
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        dec(amount),
	})
	require.NoError(t, err)
	return tx
}

func balance(t *testing.T, e *Engine, name string) decimal.Decimal {
	t.Helper()
	acct, ok := e.Account(name)
	require.True(t, ok, "account %q should exist", name)
	return acct.Balance
}

func assertDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	if !dec(want).Equal(got) {
		require.Failf(t, "decimal mismatch", "want %s, got %s", want, got.String())
	}
}

func assertEquation(t *testing.T, e *Engine) {
	t.Helper()
	assets := e.TotalAssets()
	rhs := e.TotalLiabilities().Add(e.TotalEquity())
	require.True(t, assets.Equal(rhs), "assets %s != liabilities + equity %s", assets, rhs)
}
