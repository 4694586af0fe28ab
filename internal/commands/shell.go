package commands

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledger/internal/journal"
	"github.com/cleared-dev/ledger/internal/ledger"
)

const shellHelp = `Commands:
  post <date> <debit> <credit> <amount> [description]   record a transaction (date is YYYY-MM-DD)
  accounts                                              chart of accounts with balances
  transactions                                          transaction log
  journal                                               general journal
  ledger <account>                                      one account's ledger with running balance
  balance                                               balance sheet
  trial                                                 trial balance
  export [file]                                         general journal as CSV
  verify [file]                                         audit the ledger, or check an exported journal CSV
  help                                                  this text
  quit                                                  leave the shell

Quote names that contain spaces: post 2025-01-01 Cash "Owner's Capital" 10000 "Owner investment"
`

var errQuit = errors.New("quit")

func newShellCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Record transactions and view reports interactively",
		Long:  "Starts an interactive session over an empty in-memory ledger.\n\n" + shellHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.logger.Sync() }()

			return runShell(s, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell reads one command per line until quit or end of input. Command
// errors are printed and the session continues.
func runShell(s *session, in io.Reader, out io.Writer) error {
	sh := &shell{session: s, out: out}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "ledger> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		fields, err := splitFields(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}
		err = sh.exec(fields[0], fields[1:])
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// splitFields splits a command line on spaces, honoring double quotes.
func splitFields(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = ' '
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	record, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("parsing command: %w", err)
	}
	fields := record[:0]
	for _, f := range record {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields, nil
}

type shell struct {
	*session
	out io.Writer
}

func (sh *shell) exec(name string, args []string) error {
	switch strings.ToLower(name) {
	case "post":
		return sh.post(args)
	case "accounts":
		return sh.show(sh.renderer.Chart(sh.engine.Chart()))
	case "transactions":
		return sh.show(sh.renderer.Transactions(sh.engine.Transactions()))
	case "journal":
		return sh.show(sh.renderer.Journal(sh.engine.Journal()))
	case "ledger":
		return sh.accountLedger(args)
	case "balance":
		return sh.show(sh.renderer.BalanceSheet(sh.engine.BalanceSheet()))
	case "trial":
		return sh.show(sh.renderer.TrialBalance(sh.engine.TrialBalance()))
	case "export":
		return sh.export(args)
	case "verify":
		return sh.verify(args)
	case "help", "?":
		fmt.Fprint(sh.out, shellHelp)
		return nil
	case "quit", "exit":
		return errQuit
	}
	return fmt.Errorf("unknown command %q (try help)", name)
}

func (sh *shell) show(md string, err error) error {
	text, err := sh.terminal(md, err)
	if err != nil {
		return err
	}
	fmt.Fprint(sh.out, text)
	return nil
}

func (sh *shell) post(args []string) error {
	if len(args) < 4 {
		return errors.New("usage: post <date> <debit> <credit> <amount> [description]")
	}
	date, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
	}
	amount, err := decimal.NewFromString(args[3])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[3])
	}

	tx, err := sh.engine.RecordTransaction(ledger.RecordParams{
		Date:          date,
		Description:   strings.Join(args[4:], " "),
		DebitAccount:  args[1],
		CreditAccount: args[2],
		Amount:        amount,
	})
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		sh.logger.Debug("transaction rejected", zap.String("kind", string(verr.Kind)))
		return fmt.Errorf("rejected: %s", verr.Message)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(sh.out, "recorded %s: debit %s, credit %s, %s\n",
		tx.Ref, tx.DebitAccount, tx.CreditAccount, sh.renderer.Formatter().Money(tx.Amount))
	return nil
}

func (sh *shell) accountLedger(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: ledger <account>")
	}
	account, rows, err := sh.engine.AccountLedger(args[0])
	if err != nil {
		return err
	}
	return sh.show(sh.renderer.AccountLedger(account, rows))
}

func (sh *shell) export(args []string) error {
	entries := sh.engine.Journal()
	if len(args) == 0 {
		return journal.WriteEntries(sh.out, entries)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating %s: %w", args[0], err)
	}
	if err := journal.WriteEntries(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", args[0], err)
	}
	fmt.Fprintf(sh.out, "wrote %d journal lines to %s\n", len(entries), args[0])
	return nil
}

func (sh *shell) verify(args []string) error {
	switch len(args) {
	case 0:
		if err := sh.engine.Verify(); err != nil {
			return fmt.Errorf("ledger inconsistent:\n%w", err)
		}
		fmt.Fprintf(sh.out, "ok: %d transactions, %d journal lines\n", len(sh.engine.Transactions()), len(sh.engine.Journal()))
		return nil
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()

		entries, err := journal.ReadEntries(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(sh.out, "ok: %s: %d entries, %d journal lines\n", args[0], len(entries)/2, len(entries))
		return nil
	}
	return errors.New("usage: verify [file]")
}
