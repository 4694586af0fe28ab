package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// Chart returns the accounts with their current balances, in chart order.
func (e *Engine) Chart() []model.Account {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.chart.All()
}

// Account returns one account by name.
func (e *Engine) Account(name string) (model.Account, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.chart.Get(name)
}

// Transactions returns the transaction log in recording order.
func (e *Engine) Transactions() []model.Transaction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]model.Transaction, len(e.transactions))
	copy(out, e.transactions)
	return out
}

// Journal returns the general journal, two lines per transaction.
func (e *Engine) Journal() []model.JournalEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]model.JournalEntry, len(e.journal))
	copy(out, e.journal)
	return out
}

// TransactionsForAccount returns, in recording order, every transaction that
// debits or credits the named account.
func (e *Engine) TransactionsForAccount(name string) []model.Transaction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return filterByAccount(e.transactions, name)
}

func filterByAccount(txs []model.Transaction, name string) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if tx.Touches(name) {
			out = append(out, tx)
		}
	}
	return out
}

// RunningBalance replays the sign rule for account over txs, starting from
// zero, and returns the balance after each transaction. A transaction that
// does not touch the account leaves the balance unchanged.
func RunningBalance(account model.Account, txs []model.Transaction) []decimal.Decimal {
	balances := make([]decimal.Decimal, len(txs))
	balance := decimal.Zero
	for i, tx := range txs {
		switch account.Name {
		case tx.DebitAccount:
			balance = balance.Add(model.SignedEffect(account.Type, tx.Amount, true))
		case tx.CreditAccount:
			balance = balance.Add(model.SignedEffect(account.Type, tx.Amount, false))
		}
		balances[i] = balance
	}
	return balances
}

// RunningBalance is the engine-bound form of the package function.
func (e *Engine) RunningBalance(account model.Account, txs []model.Transaction) []decimal.Decimal {
	return RunningBalance(account, txs)
}

// LedgerRow is one line of a single account's ledger view.
type LedgerRow struct {
	Transaction model.Transaction
	Debit       decimal.NullDecimal
	Credit      decimal.NullDecimal
	Balance     decimal.Decimal
}

// AccountLedger returns one account and its ledger view: its transactions in
// order, with the side it sits on and the running balance after each. The
// account and rows come from the same snapshot, so the last row's balance
// equals the account's.
func (e *Engine) AccountLedger(name string) (model.Account, []LedgerRow, error) {
	e.mu.RLock()
	account, ok := e.chart.Get(name)
	var txs []model.Transaction
	if ok {
		txs = filterByAccount(e.transactions, name)
	}
	e.mu.RUnlock()

	if !ok {
		return model.Account{}, nil, invalid(KindUnknownAccount, "account", "unknown account %q", name)
	}

	balances := RunningBalance(account, txs)
	rows := make([]LedgerRow, len(txs))
	for i, tx := range txs {
		row := LedgerRow{Transaction: tx, Balance: balances[i]}
		if tx.DebitAccount == name {
			row.Debit = decimal.NewNullDecimal(tx.Amount)
		} else {
			row.Credit = decimal.NewNullDecimal(tx.Amount)
		}
		rows[i] = row
	}
	return account, rows, nil
}
