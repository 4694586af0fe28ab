package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountsCSV "github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/config"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "ledger-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "ledger")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/ledger")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runLedger(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedger(t, dir, "", "init", dir, "--name", "My Company")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "ledger.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "My Company", cfg.Business.Name)
	assert.Equal(t, "accounts/chart-of-accounts.csv", cfg.Chart.Source)
	assert.Equal(t, "USD", cfg.Display.Currency)
}

func TestInit_Accounts(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedger(t, dir, "", "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	require.NoError(t, err)
	defer f.Close()

	accts, err := accountsCSV.ReadAccounts(f)
	require.NoError(t, err)
	assert.Len(t, accts, 14, "reference chart has 14 accounts")
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedger(t, dir, "", "init", dir)
	require.Error(t, err, "init without --name should fail")
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedger(t, dir, "", "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	out, err := runLedger(t, dir, "", "init", dir, "--name", "Other")
	require.Error(t, err)
	assert.Contains(t, out, "already exists")
}

func TestChart_UsesProjectChart(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedger(t, dir, "", "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	// Trim the chart to two accounts.
	csv := "account_name,account_type\nCash,asset\nOwner's Capital,equity\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accounts", "chart-of-accounts.csv"), []byte(csv), 0o644))

	out, err := runLedger(t, dir, "", "chart")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Owner's Capital")
	assert.NotContains(t, out, "Rent Expense")
}

func TestShell_Piped(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedger(t, dir, "", "init", dir, "--name", "Test Biz", "--currency", "EUR")
	require.NoError(t, err)

	script := strings.Join([]string{
		`post 2025-01-01 Cash "Owner's Capital" 10000.00 "Owner investment"`,
		`post 2025-01-02 "Rent Expense" Cash 2000.00 "Pay rent"`,
		"export",
		"quit",
	}, "\n")
	out, err := runLedger(t, dir, script, "shell")
	require.NoError(t, err, out)
	assert.Contains(t, out, "recorded 2025-01-002")
	assert.Contains(t, out, "2025-01-002b,,,Cash,,2000.00")
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedger(t, dir, "", "init", dir, "--name", "Test Biz")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LEDGER_LOG_LEVEL=verbose\n"), 0o644))

	out, err := runLedger(t, dir, "", "chart")
	require.Error(t, err)
	assert.Contains(t, out, "log.level")
}

func TestVersion(t *testing.T) {
	out, err := runLedger(t, t.TempDir(), "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
