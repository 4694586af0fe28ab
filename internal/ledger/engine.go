// Package ledger is the double-entry bookkeeping engine: it validates and
// records transactions against a chart of accounts, keeps the general journal
// in step, and answers balance queries.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/id"
	"github.com/cleared-dev/ledger/internal/journal"
	"github.com/cleared-dev/ledger/internal/model"
)

// State is the coarse lifecycle of a ledger.
type State int

const (
	Empty State = iota
	Populated
)

func (s State) String() string {
	if s == Populated {
		return "populated"
	}
	return "empty"
}

// Engine owns a chart of accounts plus the append-only transaction log and
// general journal derived from it.
//
// RecordTransaction is the only mutator and runs under the write lock from
// validation to commit; readers take the read lock and get copies, so no
// reader ever sees a transaction half applied.
type Engine struct {
	mu           sync.RWMutex
	chart        *accounts.Chart
	transactions []model.Transaction
	journal      []model.JournalEntry
	refs         id.Sequencer

	logger *zap.Logger
	newID  func() uuid.UUID
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug output on successful postings.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithIDGenerator replaces uuid.New as the source of transaction IDs.
func WithIDGenerator(f func() uuid.UUID) Option {
	return func(e *Engine) { e.newID = f }
}

// New creates an engine over a copy of chart. Later changes to chart do not
// affect the engine.
func New(chart *accounts.Chart, opts ...Option) *Engine {
	e := &Engine{
		chart:  chart.Clone(),
		logger: zap.NewNop(),
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RecordParams holds the inputs of one transaction.
type RecordParams struct {
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}

// RecordTransaction validates and posts a transaction. Checks run in order
// (amount, distinct accounts, chart membership) and stop at the first
// failure, which is returned as a *ValidationError with nothing changed.
func (e *Engine) RecordTransaction(p RecordParams) (model.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.validate(p); err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		ID:            e.newID(),
		Ref:           e.refs.Next(p.Date),
		Date:          p.Date,
		Description:   p.Description,
		DebitAccount:  p.DebitAccount,
		CreditAccount: p.CreditAccount,
		Amount:        p.Amount,
	}

	e.transactions = append(e.transactions, tx)
	e.post(tx.DebitAccount, tx.Amount, true)
	e.post(tx.CreditAccount, tx.Amount, false)
	pair := journal.Derive(tx)
	e.journal = append(e.journal, pair[0], pair[1])

	e.logger.Debug("transaction recorded",
		zap.String("ref", tx.Ref),
		zap.Stringer("id", tx.ID),
		zap.String("debit", tx.DebitAccount),
		zap.String("credit", tx.CreditAccount),
		zap.String("amount", tx.Amount.String()),
	)
	return tx, nil
}

func (e *Engine) validate(p RecordParams) error {
	if !p.Amount.IsPositive() {
		return invalid(KindInvalidAmount, "amount", "amount must be greater than zero, got %s", p.Amount)
	}
	if p.DebitAccount == p.CreditAccount {
		return invalid(KindSameAccount, "creditAccount", "cannot debit and credit %q", p.DebitAccount)
	}
	if !e.chart.Exists(p.DebitAccount) {
		return invalid(KindUnknownAccount, "debitAccount", "unknown account %q", p.DebitAccount)
	}
	if !e.chart.Exists(p.CreditAccount) {
		return invalid(KindUnknownAccount, "creditAccount", "unknown account %q", p.CreditAccount)
	}
	return nil
}

func (e *Engine) post(account string, amount decimal.Decimal, isDebit bool) {
	if err := e.chart.Post(account, amount, isDebit); err != nil {
		// Membership was checked under the same lock.
		panic(fmt.Sprintf("ledger: %v", err))
	}
}

// State reports whether any transaction has been recorded.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if len(e.transactions) == 0 {
		return Empty
	}
	return Populated
}
