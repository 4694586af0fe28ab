package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledger/internal/journal"
	"github.com/cleared-dev/ledger/internal/ledger"
)

// wantsMarkdown reports whether the caller asked for ?format=markdown.
func wantsMarkdown(r *http.Request) bool {
	return r.URL.Query().Get("format") == "markdown"
}

// respond writes either the rendered markdown or the JSON value.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any, md func() (string, error)) {
	if !wantsMarkdown(r) {
		writeJSON(w, http.StatusOK, v)
		return
	}
	out, err := md()
	if err != nil {
		s.logger.Error("rendering markdown", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to render report")
		return
	}
	writeMarkdown(w, out)
}

// listAccounts handles GET /accounts.
func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accts := s.engine.Chart()
	s.respond(w, r, map[string]any{"accounts": toAccountsJSON(accts)},
		func() (string, error) { return s.renderer.Chart(accts) })
}

// accountLedger handles GET /accounts/{name}/ledger.
func (s *Server) accountLedger(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid account name")
		return
	}
	account, rows, err := s.engine.AccountLedger(name)
	if errors.Is(err, ledger.ErrUnknownAccount) {
		writeJSONError(w, http.StatusNotFound, "not_found", "Account not found")
		return
	}
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to build account ledger")
		return
	}
	s.respond(w, r, map[string]any{"account": toAccountJSON(account), "rows": toLedgerJSON(rows)},
		func() (string, error) { return s.renderer.AccountLedger(account, rows) })
}

// listTransactions handles GET /transactions. ?account= filters to one account.
func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs := s.engine.Transactions()
	if name := r.URL.Query().Get("account"); name != "" {
		if _, ok := s.engine.Account(name); !ok {
			writeJSONError(w, http.StatusNotFound, "not_found", "Account not found")
			return
		}
		txs = s.engine.TransactionsForAccount(name)
	}
	s.respond(w, r, map[string]any{"transactions": toTransactionsJSON(txs)},
		func() (string, error) { return s.renderer.Transactions(txs) })
}

// createTransaction handles POST /transactions.
func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	if req.Date == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing date")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid date, expected YYYY-MM-DD")
		return
	}

	tx, err := s.engine.RecordTransaction(ledger.RecordParams{
		Date:          date,
		Description:   req.Description,
		DebitAccount:  req.DebitAccount,
		CreditAccount: req.CreditAccount,
		Amount:        req.Amount,
	})
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			s.logger.Info("transaction rejected",
				zap.String("kind", string(verr.Kind)),
				zap.String("field", verr.Field),
				zap.String("message", verr.Message),
			)
			writeJSONError(w, http.StatusUnprocessableEntity, string(verr.Kind), verr.Message)
			return
		}
		s.logger.Error("recording transaction", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to record transaction")
		return
	}

	s.hub.BroadcastTransaction(r.Context(), tx)
	writeJSON(w, http.StatusCreated, map[string]any{"transaction": toTransactionJSON(tx)})
}

// listJournal handles GET /journal.
func (s *Server) listJournal(w http.ResponseWriter, r *http.Request) {
	entries := s.engine.Journal()
	s.respond(w, r, map[string]any{"entries": toJournalJSON(entries)},
		func() (string, error) { return s.renderer.Journal(entries) })
}

// exportJournal handles GET /journal.csv.
func (s *Server) exportJournal(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="journal.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := journal.WriteEntries(w, s.engine.Journal()); err != nil {
		s.logger.Error("writing journal csv", zap.Error(err))
	}
}

// balanceSheet handles GET /balance-sheet.
func (s *Server) balanceSheet(w http.ResponseWriter, r *http.Request) {
	bs := s.engine.BalanceSheet()
	s.respond(w, r, toBalanceSheetJSON(bs),
		func() (string, error) { return s.renderer.BalanceSheet(bs) })
}

// trialBalance handles GET /trial-balance.
func (s *Server) trialBalance(w http.ResponseWriter, r *http.Request) {
	tb := s.engine.TrialBalance()
	s.respond(w, r, toTrialBalanceJSON(tb),
		func() (string, error) { return s.renderer.TrialBalance(tb) })
}
