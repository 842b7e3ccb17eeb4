package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"idcard/client"
	"idcard/session"
)

var (
	serverURL   string
	storagePath string
	timeout     time.Duration
	verbose     bool

	logger  *zap.Logger
	storage *session.SQLiteStorage
	store   *session.Store
	api     *client.Client
)

var rootCmd = &cobra.Command{
	Use:           "idcard",
	Short:         "Digital employee ID card",
	Long:          "Log in against the idcard API and show your employee ID card in the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(storagePath), 0o700); err != nil {
			return fmt.Errorf("failed to create storage directory: %w", err)
		}
		storage, err = session.OpenSQLite(storagePath)
		if err != nil {
			return err
		}
		store = session.NewStore(storage, logger.Named("session"))
		api = client.New(serverURL, timeout)
		return nil
	},
}

func closeResources() {
	if storage != nil {
		_ = storage.Close()
		storage = nil
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

func defaultServer() string {
	if v := os.Getenv("IDCARD_SERVER"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "idcard", "storage.db")
}

func init() {
	cobra.OnFinalize(closeResources)

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer(), "idcard API base URL")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", defaultStoragePath(), "session storage file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password")
	cardCmd.Flags().BoolVar(&cardRefresh, "refresh", false, "reload the card from the server")
	cardCmd.Flags().BoolVar(&cardPrint, "print", false, "print the card")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, cardCmd, employeesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
