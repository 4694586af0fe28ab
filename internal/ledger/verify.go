package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/journal"
	"github.com/cleared-dev/ledger/internal/model"
)

// Verify audits the ledger against its transaction log: the stored journal
// must be well paired and equal to the one derived from the log, each
// balance must equal a replay of the log from zero, and the accounting
// equation must hold. It returns nil or every problem found, joined.
func (e *Engine) Verify() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var errs []error
	for _, verr := range journal.Check(e.journal) {
		errs = append(errs, verr)
	}

	derived := journal.DeriveAll(e.transactions)
	if len(derived) != len(e.journal) {
		errs = append(errs, fmt.Errorf("journal has %d lines, transaction log derives %d", len(e.journal), len(derived)))
	} else {
		for i := range derived {
			if !sameEntry(derived[i], e.journal[i]) {
				errs = append(errs, fmt.Errorf("journal line %d [%s] does not match its transaction", i, e.journal[i].Ref))
			}
		}
	}

	for _, acct := range e.chart.All() {
		want := replay(acct, e.transactions)
		if !acct.Balance.Equal(want) {
			errs = append(errs, fmt.Errorf("account %q balance %s, replay gives %s", acct.Name, acct.Balance, want))
		}
	}

	assets := e.chart.Sum(model.AccountTypeAsset)
	rhs := e.chart.Sum(model.AccountTypeLiability).Add(totalEquity(e.chart))
	if !assets.Equal(rhs) {
		errs = append(errs, fmt.Errorf("assets %s != liabilities + equity %s", assets, rhs))
	}

	return errors.Join(errs...)
}

// replay is the balance of acct after every transaction in txs.
func replay(acct model.Account, txs []model.Transaction) decimal.Decimal {
	balances := RunningBalance(acct, txs)
	if len(balances) == 0 {
		return decimal.Zero
	}
	return balances[len(balances)-1]
}

func sameEntry(a, b model.JournalEntry) bool {
	return a.Ref == b.Ref &&
		a.Date.Equal(b.Date) &&
		a.Description == b.Description &&
		a.AccountName == b.AccountName &&
		sameNull(a.Debit.Valid, b.Debit.Valid, a.Debit.Decimal.Equal(b.Debit.Decimal)) &&
		sameNull(a.Credit.Valid, b.Credit.Valid, a.Credit.Decimal.Equal(b.Credit.Decimal))
}

func sameNull(aValid, bValid, equal bool) bool {
	if aValid != bValid {
		return false
	}
	return !aValid || equal
}
