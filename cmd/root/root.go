// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/syafitri453/Finance-Apps/internal/common"
	"github.com/syafitri453/Finance-Apps/internal/config"
	"github.com/syafitri453/Finance-Apps/internal/fileutils"
	"github.com/syafitri453/Finance-Apps/internal/logging"
	"github.com/syafitri453/Finance-Apps/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-apps",
		Short: "A CLI tool to aggregate transaction ledgers and analyze budget variance.",
		Long: `finance-apps summarizes transaction ledgers (income, expenses, balance,
monthly trends) and computes budget-vs-actual variance from CSV input.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finance-apps!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env first so viper's env binding sees those variables
			config.LoadEnv()
			cfg := config.GetGlobalConfig()
			Log = config.ConfigureLoggingFromConfig(cfg)

			logging.SetLogger(Log)
			common.SetLogger(Log)
			store.SetLogger(Log)

			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
			// Legacy CSV_DELIMITER variable still wins when set
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific variance command flags
	BudgetCol   string
	ActualCol   string
	CategoryCol string

	// Specific categories command flags
	CategoriesFile string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "text", "Output format (text or json)")
}

// WriteOutput writes rendered report bytes to the shared output file, or to
// stdout when no output file is set.
func WriteOutput(data []byte) error {
	if SharedFlags.Output == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return fileutils.WriteFile(SharedFlags.Output, data, 0600)
}
