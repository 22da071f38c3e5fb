package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"opus-invite/internal/config"
	"opus-invite/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "opus-invite",
	Short: "Build shareable invitations and manage RSVP responses",
	Long: "opus-invite encodes an event invitation into a shareable link, renders\n" +
		"received invitations, and keeps RSVP responses in a local ledger.",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore opens the sqlite-backed blob store under the configured data
// directory. Callers must Close it.
func openStore(cfg *config.Config) (*storage.Store, error) {
	kv, err := storage.NewSQLiteKV(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return storage.NewStore(kv), nil
}
