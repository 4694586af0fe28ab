package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/model"
)

// Amounts are exact decimal strings; dates are YYYY-MM-DD.
const dateLayout = "2006-01-02"

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// CreateTransactionRequest is the body of POST /transactions.
type CreateTransactionRequest struct {
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"`
}

type accountJSON struct {
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

func toAccountsJSON(accts []model.Account) []accountJSON {
	out := make([]accountJSON, len(accts))
	for i, a := range accts {
		out[i] = toAccountJSON(a)
	}
	return out
}

func toAccountJSON(a model.Account) accountJSON {
	return accountJSON{Name: a.Name, Type: string(a.Type), Balance: a.Balance}
}

type transactionJSON struct {
	ID            uuid.UUID       `json:"id"`
	Ref           string          `json:"ref"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"`
}

func toTransactionJSON(tx model.Transaction) transactionJSON {
	return transactionJSON{
		ID:            tx.ID,
		Ref:           tx.Ref,
		Date:          tx.Date.Format(dateLayout),
		Description:   tx.Description,
		DebitAccount:  tx.DebitAccount,
		CreditAccount: tx.CreditAccount,
		Amount:        tx.Amount,
	}
}

func toTransactionsJSON(txs []model.Transaction) []transactionJSON {
	out := make([]transactionJSON, len(txs))
	for i, tx := range txs {
		out[i] = toTransactionJSON(tx)
	}
	return out
}

// journalEntryJSON leaves absent cells null.
type journalEntryJSON struct {
	Ref         string              `json:"ref"`
	Date        *string             `json:"date"`
	Description *string             `json:"description"`
	Account     string              `json:"account"`
	Debit       decimal.NullDecimal `json:"debit"`
	Credit      decimal.NullDecimal `json:"credit"`
}

func toJournalJSON(entries []model.JournalEntry) []journalEntryJSON {
	out := make([]journalEntryJSON, len(entries))
	for i, e := range entries {
		j := journalEntryJSON{Ref: e.Ref, Account: e.AccountName, Debit: e.Debit, Credit: e.Credit}
		if !e.Date.IsZero() {
			d := e.Date.Format(dateLayout)
			j.Date = &d
		}
		if e.IsDebit() {
			desc := e.Description
			j.Description = &desc
		}
		out[i] = j
	}
	return out
}

type ledgerRowJSON struct {
	Transaction transactionJSON     `json:"transaction"`
	Debit       decimal.NullDecimal `json:"debit"`
	Credit      decimal.NullDecimal `json:"credit"`
	Balance     decimal.Decimal     `json:"balance"`
}

func toLedgerJSON(rows []ledger.LedgerRow) []ledgerRowJSON {
	out := make([]ledgerRowJSON, len(rows))
	for i, r := range rows {
		out[i] = ledgerRowJSON{
			Transaction: toTransactionJSON(r.Transaction),
			Debit:       r.Debit,
			Credit:      r.Credit,
			Balance:     r.Balance,
		}
	}
	return out
}

type balanceLineJSON struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

type balanceSheetJSON struct {
	Assets               []balanceLineJSON `json:"assets"`
	Liabilities          []balanceLineJSON `json:"liabilities"`
	Equity               []balanceLineJSON `json:"equity"`
	TotalAssets          decimal.Decimal   `json:"totalAssets"`
	TotalLiabilities     decimal.Decimal   `json:"totalLiabilities"`
	NetIncome            decimal.Decimal   `json:"netIncome"`
	TotalEquity          decimal.Decimal   `json:"totalEquity"`
	LiabilitiesAndEquity decimal.Decimal   `json:"liabilitiesAndEquity"`
	Balanced             bool              `json:"balanced"`
}

func toBalanceSheetJSON(bs ledger.BalanceSheet) balanceSheetJSON {
	conv := func(lines []ledger.BalanceSheetLine) []balanceLineJSON {
		out := make([]balanceLineJSON, len(lines))
		for i, l := range lines {
			out[i] = balanceLineJSON{Name: l.Name, Balance: l.Balance}
		}
		return out
	}
	return balanceSheetJSON{
		Assets:               conv(bs.Assets),
		Liabilities:          conv(bs.Liabilities),
		Equity:               conv(bs.Equity),
		TotalAssets:          bs.TotalAssets,
		TotalLiabilities:     bs.TotalLiabilities,
		NetIncome:            bs.NetIncome,
		TotalEquity:          bs.TotalEquity,
		LiabilitiesAndEquity: bs.LiabilitiesAndEquity(),
		Balanced:             bs.Balanced(),
	}
}

type trialRowJSON struct {
	Account string              `json:"account"`
	Type    string              `json:"type"`
	Debit   decimal.NullDecimal `json:"debit"`
	Credit  decimal.NullDecimal `json:"credit"`
}

type trialBalanceJSON struct {
	Rows        []trialRowJSON  `json:"rows"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

func toTrialBalanceJSON(tb ledger.TrialBalance) trialBalanceJSON {
	rows := make([]trialRowJSON, len(tb.Rows))
	for i, r := range tb.Rows {
		rows[i] = trialRowJSON{Account: r.Account.Name, Type: string(r.Account.Type), Debit: r.Debit, Credit: r.Credit}
	}
	return trialBalanceJSON{Rows: rows, TotalDebit: tb.TotalDebit, TotalCredit: tb.TotalCredit}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
