package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/model"
)

func TestDerive(t *testing.T) {
	tx := testTx("2025-01-001", "Cash", "Owner's Capital", "10000.00")
	pair := Derive(tx)

	debit := pair[0]
	assert.Equal(t, "2025-01-001a", debit.Ref)
	assert.Equal(t, tx.Date, debit.Date)
	assert.Equal(t, "Owner investment", debit.Description)
	assert.Equal(t, "Cash", debit.AccountName)
	require.True(t, debit.Debit.Valid)
	assert.True(t, dec("10000.00").Equal(debit.Debit.Decimal))
	assert.False(t, debit.Credit.Valid)

	credit := pair[1]
	assert.Equal(t, "2025-01-001b", credit.Ref)
	assert.True(t, credit.Date.IsZero())
	assert.Empty(t, credit.Description)
	assert.Equal(t, "Owner's Capital", credit.AccountName)
	assert.False(t, credit.Debit.Valid)
	require.True(t, credit.Credit.Valid)
	assert.True(t, dec("10000.00").Equal(credit.Credit.Decimal))
}

func TestDeriveAll(t *testing.T) {
	txs := []model.Transaction{
		testTx("2025-01-001", "Cash", "Owner's Capital", "10000.00"),
		testTx("2025-01-002", "Rent Expense", "Cash", "2000.00"),
	}

	entries := DeriveAll(txs)
	require.Len(t, entries, 4)
	for k, tx := range txs {
		assert.Equal(t, tx.DebitAccount, entries[2*k].AccountName)
		assert.True(t, entries[2*k].IsDebit())
		assert.Equal(t, tx.CreditAccount, entries[2*k+1].AccountName)
		assert.False(t, entries[2*k+1].IsDebit())
	}
	assert.Empty(t, Check(entries))
}

func TestDeriveAll_Empty(t *testing.T) {
	entries := DeriveAll(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
