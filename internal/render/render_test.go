package render

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/ledger"
)

func workedEngine(t *testing.T) *ledger.Engine {
	t.Helper()
	e := ledger.New(accounts.DefaultChart())
	_, err := e.RecordTransaction(ledger.RecordParams{
		Date:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Description:   "Owner investment",
		DebitAccount:  "Cash",
		CreditAccount: "Owner's Capital",
		Amount:        decimal.RequireFromString("10000.00"),
	})
	require.NoError(t, err)
	_, err = e.RecordTransaction(ledger.RecordParams{
		Date:          time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Description:   "Pay rent | January",
		DebitAccount:  "Rent Expense",
		CreditAccount: "Cash",
		Amount:        decimal.RequireFromString("2000.00"),
	})
	require.NoError(t, err)
	return e
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("USD")
	require.NoError(t, err)
	return r
}

func TestBalanceSheet(t *testing.T) {
	r := newRenderer(t)
	md, err := r.BalanceSheet(workedEngine(t).BalanceSheet())
	require.NoError(t, err)

	assert.Contains(t, md, "# Balance Sheet")
	assert.Contains(t, md, "| Cash | $8,000.00 |")
	assert.Contains(t, md, "| **Total Assets** | **$8,000.00** |")
	assert.Contains(t, md, "| Net Income | -$2,000.00 |")
	assert.Contains(t, md, "| **Total Liabilities & Equity** | **$8,000.00** |")
	assert.Contains(t, md, "Assets = Liabilities + Equity.")
}

func TestJournal(t *testing.T) {
	r := newRenderer(t)
	md, err := r.Journal(workedEngine(t).Journal())
	require.NoError(t, err)

	assert.Contains(t, md, "| 2025-01-001a | 2025-01-01 | Owner investment | Cash | $10,000.00 |  |")
	assert.Contains(t, md, "| 2025-01-001b |  |  | Owner's Capital |  | $10,000.00 |")
	assert.Contains(t, md, `Pay rent \| January`, "pipes in descriptions are escaped")
}

func TestJournal_Empty(t *testing.T) {
	r := newRenderer(t)
	md, err := r.Journal(nil)
	require.NoError(t, err)
	assert.Contains(t, md, "_No transactions recorded._")
	assert.NotContains(t, md, "| Ref |")
}

func TestAccountLedger(t *testing.T) {
	e := workedEngine(t)
	r := newRenderer(t)

	cash, rows, err := e.AccountLedger("Cash")
	require.NoError(t, err)

	md, err := r.AccountLedger(cash, rows)
	require.NoError(t, err)
	assert.Contains(t, md, "# General Ledger: Cash")
	assert.Contains(t, md, "| 2025-01-01 | Owner investment | $10,000.00 |  | $10,000.00 |")
	assert.Contains(t, md, "|  | $2,000.00 | $8,000.00 |")
}

func TestTransactionsAndChart(t *testing.T) {
	e := workedEngine(t)
	r := newRenderer(t)

	md, err := r.Transactions(e.Transactions())
	require.NoError(t, err)
	assert.Contains(t, md, "| 2025-01-002 | 2025-01-02 |")

	md, err = r.Chart(e.Chart())
	require.NoError(t, err)
	assert.Contains(t, md, "| Rent Expense | expense | $2,000.00 |")
	assert.Contains(t, md, "| Inventory | asset | $0.00 |")
}

func TestTrialBalance(t *testing.T) {
	r := newRenderer(t)
	md, err := r.TrialBalance(workedEngine(t).TrialBalance())
	require.NoError(t, err)
	assert.Contains(t, md, "| **Total** | **$10,000.00** | **$10,000.00** |")
}

func TestTerminal(t *testing.T) {
	out, err := Terminal("# Title\n\nsome text\n", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "some text")

	_, err = Terminal("# x", "no-such-style")
	assert.Error(t, err)
}
