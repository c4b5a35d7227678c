package main

import (
	"fmt"
	"log/slog"
	"os"

	"librarium/library"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "librarium",
		Short:         "Interactive library catalog and circulation desk",
		Long: `librarium keeps a library's catalog and circulation state in memory and
drives it through an interactive console: book and user management,
borrowing, returns, overdue tracking and search.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile, cmd.Flags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			lib, err := library.New(cfg.DayDuration)
			if err != nil {
				return err
			}
			logger.Debug("library ready", "day_duration", cfg.DayDuration)

			if cfg.SeedPath != "" {
				n, err := lib.ImportSeed(cfg.SeedPath)
				if err != nil {
					return fmt.Errorf("import seed catalog: %w", err)
				}
				logger.Info("seed catalog imported", "path", cfg.SeedPath, "books", n)
			}

			newShell(lib, cmd.InOrStdin(), cmd.OutOrStdout()).run()
			return nil
		},
	}

	root.Flags().String("day-duration", "24h", "real-time length of one simulated day (Go duration)")
	root.Flags().String("seed", "", "path to a SQLite seed catalog imported at startup")
	root.Flags().Bool("verbose", false, "enable debug logging")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "path to a .env file with LIBRARIUM_* settings")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the librarium version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
