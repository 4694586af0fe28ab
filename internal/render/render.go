// Package render turns ledger state into markdown reports and, for
// terminals, styled text. It is the only place amounts become strings.
package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/model"
)

//go:embed templates/*.md
var templateFS embed.FS

// Renderer renders reports for one display currency.
type Renderer struct {
	fmt       Formatter
	templates *template.Template
}

// New parses the report templates for the given currency.
func New(currency string) (*Renderer, error) {
	f := NewFormatter(currency)
	funcs := template.FuncMap{
		"money": f.Money,
		"opt":   f.Optional,
		"date":  formatDate,
		"cell":  escapeCell,
	}
	t, err := template.New("reports").Funcs(funcs).ParseFS(templateFS, "templates/*.md")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{fmt: f, templates: t}, nil
}

// Formatter returns the renderer's money formatter.
func (r *Renderer) Formatter() Formatter { return r.fmt }

func (r *Renderer) execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := r.templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return b.String(), nil
}

// Chart renders the chart of accounts with balances.
func (r *Renderer) Chart(accts []model.Account) (string, error) {
	return r.execute("chart.md", struct{ Accounts []model.Account }{accts})
}

// Transactions renders the transaction log.
func (r *Renderer) Transactions(txs []model.Transaction) (string, error) {
	return r.execute("transactions.md", struct{ Transactions []model.Transaction }{txs})
}

// Journal renders the general journal.
func (r *Renderer) Journal(entries []model.JournalEntry) (string, error) {
	return r.execute("journal.md", struct{ Entries []model.JournalEntry }{entries})
}

// AccountLedger renders one account's ledger view.
func (r *Renderer) AccountLedger(account model.Account, rows []ledger.LedgerRow) (string, error) {
	return r.execute("account_ledger.md", struct {
		Account model.Account
		Rows    []ledger.LedgerRow
	}{account, rows})
}

// BalanceSheet renders the balance sheet.
func (r *Renderer) BalanceSheet(bs ledger.BalanceSheet) (string, error) {
	return r.execute("balance_sheet.md", struct{ Sheet ledger.BalanceSheet }{bs})
}

// TrialBalance renders the trial balance.
func (r *Renderer) TrialBalance(tb ledger.TrialBalance) (string, error) {
	return r.execute("trial_balance.md", struct{ Trial ledger.TrialBalance }{tb})
}

// Terminal styles markdown for a terminal using a glamour standard style
// ("notty", "dark", "light", "ascii", ...).
func Terminal(markdown, style string) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// escapeCell keeps user text from breaking a markdown table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
