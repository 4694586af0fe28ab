package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/model"
)

// Totals are recomputed from account balances on every call; there are no
// closing entries and no retained-earnings account.

// TotalAssets sums the balances of asset accounts.
func (e *Engine) TotalAssets() decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.chart.Sum(model.AccountTypeAsset)
}

// TotalLiabilities sums the balances of liability accounts.
func (e *Engine) TotalLiabilities() decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.chart.Sum(model.AccountTypeLiability)
}

// TotalEquity is equity plus income minus expense.
func (e *Engine) TotalEquity() decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return totalEquity(e.chart)
}

// NetIncome is income minus expense.
func (e *Engine) NetIncome() decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return netIncome(e.chart)
}

func netIncome(c *accounts.Chart) decimal.Decimal {
	return c.Sum(model.AccountTypeIncome).Sub(c.Sum(model.AccountTypeExpense))
}

func totalEquity(c *accounts.Chart) decimal.Decimal {
	return c.Sum(model.AccountTypeEquity).Add(netIncome(c))
}

// BalanceSheetLine is one account shown on the balance sheet.
type BalanceSheetLine struct {
	Name    string
	Balance decimal.Decimal
}

// BalanceSheet is a point-in-time view of the accounting equation.
type BalanceSheet struct {
	Assets      []BalanceSheetLine
	Liabilities []BalanceSheetLine
	Equity      []BalanceSheetLine // equity-typed accounts; net income is reported separately

	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetIncome        decimal.Decimal
	TotalEquity      decimal.Decimal
}

// LiabilitiesAndEquity is the right-hand side of the accounting equation.
func (b BalanceSheet) LiabilitiesAndEquity() decimal.Decimal {
	return b.TotalLiabilities.Add(b.TotalEquity)
}

// Balanced reports whether assets equal liabilities plus equity.
func (b BalanceSheet) Balanced() bool {
	return b.TotalAssets.Equal(b.LiabilitiesAndEquity())
}

// BalanceSheet builds the balance sheet from one consistent snapshot.
func (e *Engine) BalanceSheet() BalanceSheet {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return BalanceSheet{
		Assets:           lines(e.chart.ByType(model.AccountTypeAsset)),
		Liabilities:      lines(e.chart.ByType(model.AccountTypeLiability)),
		Equity:           lines(e.chart.ByType(model.AccountTypeEquity)),
		TotalAssets:      e.chart.Sum(model.AccountTypeAsset),
		TotalLiabilities: e.chart.Sum(model.AccountTypeLiability),
		NetIncome:        netIncome(e.chart),
		TotalEquity:      totalEquity(e.chart),
	}
}

func lines(accts []model.Account) []BalanceSheetLine {
	out := make([]BalanceSheetLine, len(accts))
	for i, a := range accts {
		out[i] = BalanceSheetLine{Name: a.Name, Balance: a.Balance}
	}
	return out
}

// TrialBalanceRow shows an account's balance on its debit or credit side.
// Zero-balance accounts have neither side set.
type TrialBalanceRow struct {
	Account model.Account
	Debit   decimal.NullDecimal
	Credit  decimal.NullDecimal
}

// TrialBalance lists every account's balance by side. TotalDebit always
// equals TotalCredit.
type TrialBalance struct {
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// TrialBalance builds the trial balance in chart order.
func (e *Engine) TrialBalance() TrialBalance {
	e.mu.RLock()
	defer e.mu.RUnlock()

	tb := TrialBalance{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, a := range e.chart.All() {
		row := TrialBalanceRow{Account: a}
		// Balance expressed as debits minus credits.
		net := a.Balance
		if !a.Type.DebitNormal() {
			net = net.Neg()
		}
		switch {
		case net.IsPositive():
			row.Debit = decimal.NewNullDecimal(net)
			tb.TotalDebit = tb.TotalDebit.Add(net)
		case net.IsNegative():
			row.Credit = decimal.NewNullDecimal(net.Neg())
			tb.TotalCredit = tb.TotalCredit.Add(net.Neg())
		}
		tb.Rows = append(tb.Rows, row)
	}
	return tb
}
