package accounts

import "github.com/cleared-dev/ledger/internal/model"

// DefaultChart returns the reference chart of accounts.
func DefaultChart() *Chart {
	c, err := NewChart(DefaultAccounts())
	if err != nil {
		panic("default chart: " + err.Error())
	}
	return c
}

// DefaultAccounts returns the reference account definitions in chart order.
func DefaultAccounts() []model.Account {
	return []model.Account{
		{Name: "Cash", Type: model.AccountTypeAsset},
		{Name: "Equipment", Type: model.AccountTypeAsset},
		{Name: "Accounts Receivable", Type: model.AccountTypeAsset},
		{Name: "Prepaid Expenses", Type: model.AccountTypeAsset},
		{Name: "Inventory", Type: model.AccountTypeAsset},
		{Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Name: "Notes Payable", Type: model.AccountTypeLiability},
		{Name: "Owner's Capital", Type: model.AccountTypeEquity},
		{Name: "Sales Revenue", Type: model.AccountTypeIncome},
		{Name: "Service Revenue", Type: model.AccountTypeIncome},
		{Name: "Cost of Goods Sold", Type: model.AccountTypeExpense},
		{Name: "Rent Expense", Type: model.AccountTypeExpense},
		{Name: "Salaries Expense", Type: model.AccountTypeExpense},
		{Name: "Utilities Expense", Type: model.AccountTypeExpense},
	}
}
