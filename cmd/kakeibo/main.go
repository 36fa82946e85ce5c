package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/yurifrl/kakeibo/pkg/config"
	"github.com/yurifrl/kakeibo/pkg/csv"
	"github.com/yurifrl/kakeibo/pkg/kakeibo"
	"github.com/yurifrl/kakeibo/pkg/ledger"
	"github.com/yurifrl/kakeibo/pkg/models"
	"github.com/yurifrl/kakeibo/pkg/reader"
)

var (
	cliFilters filters
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "kakeibo <config-file>",
	Short: "Record daily household ledger entries",
	Long: `Prompts for entries until an empty amount is given, then saves every account.

An amount starting with "=" records the running total of the account for the
day; any other amount is filed as a transaction with a title, shop and category.
The account is chosen by any unambiguous prefix of its name.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd, args[0])
		if err != nil {
			return err
		}

		m, err := openManager(cfg, logger)
		if err != nil {
			return err
		}

		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)
		if cfg.HistoryFile != "" {
			readHistory(line, cfg.HistoryFile, logger)
			defer writeHistory(line, cfg.HistoryFile, logger)
		}

		logger.Info("session started", "today", m.Today(), "accounts", len(m.Accounts()))
		runErr := m.Run(cmd.Context(), reader.New(line, logger), newPrinter(cmd.OutOrStdout()))
		if err := m.Save(); err != nil {
			return multierr.Append(runErr, fmt.Errorf("failed to save accounts: %w", err))
		}
		logger.Info("accounts saved", "count", len(m.Accounts()))
		return runErr
	},
}

var initCmd = &cobra.Command{
	Use:   "init <config-file>",
	Short: "Create empty ledger files for configured accounts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd, args[0])
		if err != nil {
			return err
		}

		for _, filename := range cfg.Accounts {
			if _, err := os.Stat(filename); err == nil {
				logger.Debug("ledger exists", "file", filename)
				continue
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", filename, err)
			}
			if err := ledger.New(filename, "").Save(); err != nil {
				return err
			}
			logger.Info("created ledger", "file", filename)
		}
		return nil
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts <config-file>",
	Short: "List configured accounts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd, args[0])
		if err != nil {
			return err
		}
		m, err := openManager(cfg, logger)
		if err != nil {
			return err
		}

		nameStyle := lipgloss.NewStyle().Bold(true)
		fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
		out := cmd.OutOrStdout()
		for _, a := range m.Accounts() {
			fmt.Fprintf(out, "%s %s %d day(s)\n",
				nameStyle.Render(fmt.Sprintf("%-16s", a.Name())),
				fileStyle.Render(a.Filename()),
				len(a.Dates()))
		}
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump <config-file> <account-prefix>",
	Short: "Pretty-print the ledger of one account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := findAccount(cmd, args[0], args[1])
		if err != nil {
			return err
		}
		_, err = pp.Fprintln(cmd.OutOrStdout(), newAccountView(a))
		return err
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <config-file> <account-prefix>",
	Short: "Print the transactions of one account as CSV",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := cliFilters.toFilterFunc()
		if err != nil {
			return err
		}
		a, err := findAccount(cmd, args[0], args[1])
		if err != nil {
			return err
		}

		out, err := csv.Create(ledger.EntryHeader, a.Entries(), filter)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func setup(cmd *cobra.Command, cfgFile string) (*config.Config, *log.Logger, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    level == log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "kakeibo",
		Level:           level,
	})
	return cfg, logger, nil
}

func openManager(cfg *config.Config, logger *log.Logger) (*kakeibo.Manager, error) {
	today := kakeibo.AccountingDay(time.Now(), cfg.CutoffHour)
	return kakeibo.Open(cfg.Accounts, today, logger)
}

func findAccount(cmd *cobra.Command, cfgFile, prefix string) (*ledger.Account, error) {
	cfg, logger, err := setup(cmd, cfgFile)
	if err != nil {
		return nil, err
	}
	m, err := openManager(cfg, logger)
	if err != nil {
		return nil, err
	}
	return m.FindAccount(prefix)
}

// accountView is the printable form of an account.
type accountView struct {
	Name         string
	File         string
	Totals       map[string]int
	Transactions map[string][]models.Transaction
}

func newAccountView(a *ledger.Account) accountView {
	v := accountView{
		Name:         a.Name(),
		File:         a.Filename(),
		Totals:       make(map[string]int),
		Transactions: make(map[string][]models.Transaction),
	}
	for _, d := range a.Dates() {
		if total, ok := a.Total(d); ok {
			v.Totals[d.String()] = total
		}
		if txs := a.Transactions(d); len(txs) > 0 {
			v.Transactions[d.String()] = txs
		}
	}
	return v
}

func readHistory(line *liner.State, path string, logger *log.Logger) {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("failed to open history", "file", path, "error", err)
		}
		return
	}
	defer f.Close()
	if _, err := line.ReadHistory(f); err != nil {
		logger.Warn("failed to read history", "file", path, "error", err)
	}
}

func writeHistory(line *liner.State, path string, logger *log.Logger) {
	f, err := os.Create(path)
	if err != nil {
		logger.Warn("failed to create history", "file", path, "error", err)
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		logger.Warn("failed to write history", "file", path, "error", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory of ledger files (default is the config file directory)")
	rootCmd.PersistentFlags().Int("cutoff-hour", kakeibo.DefaultCutoffHour, "Hour before which entries belong to the previous day")
	rootCmd.PersistentFlags().String("history-file", "", "File keeping prompt history between sessions")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	exportCmd.Flags().StringVar(&cliFilters.startDate, "start", "", "Start date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&cliFilters.endDate, "end", "", "End date (YYYY-MM-DD)")
	exportCmd.Flags().IntVar(&cliFilters.minAmount, "min", 0, "Minimum amount")
	exportCmd.Flags().IntVar(&cliFilters.maxAmount, "max", 0, "Maximum amount")
	exportCmd.Flags().StringVar(&cliFilters.shop, "shop", "", "Filter by shop (case insensitive)")
	exportCmd.Flags().StringVar(&cliFilters.category, "category", "", "Filter by category (case insensitive)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
