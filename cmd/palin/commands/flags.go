package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/mrled/suns/palin/internal/logger"
	"github.com/mrled/suns/palin/internal/repository"
	"github.com/spf13/cobra"
)

// PersistenceFlags holds flags related to persistence and data storage options
type PersistenceFlags struct {
	FilePath       string
	DynamoTable    string
	DynamoEndpoint string
}

// Config converts the flags to a repository configuration
func (f PersistenceFlags) Config() repository.RepositoryConfig {
	return repository.RepositoryConfig{
		FilePath:       f.FilePath,
		DynamoTable:    f.DynamoTable,
		DynamoEndpoint: f.DynamoEndpoint,
	}
}

// addPersistenceFlags adds common persistence-related flags to a command
func addPersistenceFlags(cmd *cobra.Command, flags *PersistenceFlags) {
	cmd.Flags().StringVarP(&flags.FilePath, "file", "f", "", "Path to JSON file for check history")
	cmd.Flags().StringVarP(&flags.DynamoTable, "dynamodb-table", "t", "", "DynamoDB table name for check history")
	cmd.Flags().StringVarP(&flags.DynamoEndpoint, "dynamodb-endpoint", "e", "", "DynamoDB endpoint URL (optional, uses AWS SDK default if not specified)")
}

// newLogger builds the CLI logger. It writes text to stderr so stdout only carries results.
func newLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	cfg := logger.DefaultConfig()
	cfg.Output = w
	if os.Getenv("LOG_FORMAT") == "" {
		cfg.Format = "text"
	}
	if logLevel != "" {
		cfg.Level = logLevel
	} else if os.Getenv("LOG_LEVEL") == "" {
		cfg.Level = "warn"
	}
	return logger.WithExecutable(logger.NewLogger(cfg), "palin")
}
