package accounts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// ErrDuplicateAccount is returned when a chart would hold two accounts with the same name.
var ErrDuplicateAccount = errors.New("duplicate account name")

// Chart is the ordered chart of accounts. It owns every account's balance;
// everything else refers to accounts by name.
type Chart struct {
	accounts []model.Account
	byName   map[string]int
}

// NewChart builds a chart from account definitions, in order. Balances start at zero.
func NewChart(defs []model.Account) (*Chart, error) {
	c := &Chart{byName: make(map[string]int, len(defs))}
	for _, d := range defs {
		if err := c.Add(d.Name, d.Type); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a new zero-balance account.
func (c *Chart) Add(name string, accountType model.AccountType) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("account name is required")
	}
	if !accountType.Valid() {
		return fmt.Errorf("account %q: unknown account type %q", name, accountType)
	}
	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAccount, name)
	}
	c.byName[name] = len(c.accounts)
	c.accounts = append(c.accounts, model.Account{Name: name, Type: accountType})
	return nil
}

// LoadFile reads a chart of accounts CSV file.
func LoadFile(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	defs, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewChart(defs)
}

// Save writes the chart definition to accounts/chart-of-accounts.csv.
func (c *Chart) Save(root string) error {
	dir := filepath.Join(root, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "chart-of-accounts.csv"))
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, c.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

// All returns a copy of every account in chart order.
func (c *Chart) All() []model.Account {
	out := make([]model.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Len returns the number of accounts.
func (c *Chart) Len() int {
	return len(c.accounts)
}

// Get returns an account by name.
func (c *Chart) Get(name string) (model.Account, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.Account{}, false
	}
	return c.accounts[i], true
}

// Exists reports whether an account name is in the chart.
func (c *Chart) Exists(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// ByType returns all accounts of the given type, in chart order.
func (c *Chart) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range c.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Sum totals the balances of every account of the given type.
func (c *Chart) Sum(accountType model.AccountType) decimal.Decimal {
	total := decimal.Zero
	for _, a := range c.accounts {
		if a.Type == accountType {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// Post applies one side of a posting to the named account.
func (c *Chart) Post(name string, amount decimal.Decimal, isDebit bool) error {
	i, ok := c.byName[name]
	if !ok {
		return fmt.Errorf("unknown account %q", name)
	}
	c.accounts[i].UpdateBalance(amount, isDebit)
	return nil
}

// Clone returns an independent copy of the chart, balances included.
func (c *Chart) Clone() *Chart {
	byName := make(map[string]int, len(c.byName))
	for k, v := range c.byName {
		byName[k] = v
	}
	return &Chart{accounts: c.All(), byName: byName}
}
