package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/model"
)

func TestRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{Name: "Cash", Type: model.AccountTypeAsset},
		{Name: "Owner's Capital", Type: model.AccountTypeEquity},
	}

	var buf bytes.Buffer
	err := WriteAccounts(&buf, accounts)
	require.NoError(t, err)

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, accounts[0].Name, got[0].Name)
	assert.Equal(t, accounts[0].Type, got[0].Type)
	assert.Equal(t, accounts[1].Name, got[1].Name)
	assert.Equal(t, accounts[1].Type, got[1].Type)
}

func TestReadAccounts_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, nil))
	assert.Equal(t, "account_name,account_type\n", buf.String())

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadAccounts_BadType(t *testing.T) {
	in := "account_name,account_type\nCash,asset\nSales,revenue\n"
	_, err := ReadAccounts(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadAccounts_WrongFieldCount(t *testing.T) {
	in := "account_name,account_type\nCash,asset,extra\n"
	_, err := ReadAccounts(strings.NewReader(in))
	assert.Error(t, err)
}

func TestUnmarshalAccount_BadFieldCount(t *testing.T) {
	_, err := UnmarshalAccount([]string{"Cash"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 fields")
}

func TestAllAccountTypes(t *testing.T) {
	for _, at := range model.AccountTypes {
		var buf bytes.Buffer
		err := WriteAccounts(&buf, []model.Account{{Name: "Test", Type: at}})
		require.NoError(t, err)

		got, err := ReadAccounts(&buf)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, at, got[0].Type, "account type %q should survive round-trip", at)
	}
}

func TestDefaultChartRoundTrip(t *testing.T) {
	defs := DefaultAccounts()

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, defs))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, defs, got)
}
