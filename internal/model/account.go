package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists every account type in balance-sheet order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeIncome,
	AccountTypeExpense,
}

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// DebitNormal reports whether a debit increases accounts of this type.
// True for assets and expenses.
func (t AccountType) DebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// ParseAccountType parses a case-insensitive account type name.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown account type %q", s)
	}
	return t, nil
}

// Account is a named, typed ledger account with a running balance.
// Name is the account's key within a chart.
type Account struct {
	Name    string
	Type    AccountType
	Balance decimal.Decimal
}

// UpdateBalance applies the debit/credit sign rule for the account's type.
// amount is expected to be positive; no validation is done here.
func (a *Account) UpdateBalance(amount decimal.Decimal, isDebit bool) {
	a.Balance = a.Balance.Add(SignedEffect(a.Type, amount, isDebit))
}

// String returns "Name [type]".
func (a Account) String() string {
	return fmt.Sprintf("%s [%s]", a.Name, a.Type)
}

// SignedEffect returns the change a posting of amount has on the balance of
// an account of type t.
//
//	asset, expense:            debit +amount, credit -amount
//	liability, equity, income: debit -amount, credit +amount
func SignedEffect(t AccountType, amount decimal.Decimal, isDebit bool) decimal.Decimal {
	if t.DebitNormal() == isDebit {
		return amount
	}
	return amount.Neg()
}
