package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"opus-invite/internal/config"
)

func init() {
	draftCmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage the in-progress invitation draft",
	}
	draftCmd.AddCommand(newDraftSaveCmd(), newDraftShowCmd(), newDraftClearCmd())
	rootCmd.AddCommand(draftCmd)
}

func newDraftSaveCmd() *cobra.Command {
	var flags invitationFlags

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Store the given invitation fields as the draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			invitation, err := flags.toConfig()
			if err != nil {
				return err
			}

			store, err := openStore(config.LoadConfig())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveDraft(invitation); err != nil {
				return err
			}
			fmt.Println("Draft saved.")
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newDraftShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(config.LoadConfig())
			if err != nil {
				return err
			}
			defer store.Close()

			draft, ok := store.Draft()
			if !ok {
				fmt.Println("No draft is stored.")
				return nil
			}

			raw, err := json.MarshalIndent(draft, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render draft: %w", err)
			}
			fmt.Println(string(raw))
			return nil
		},
	}
}

func newDraftClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the stored draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(config.LoadConfig())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ClearDraft(); err != nil {
				return err
			}
			fmt.Println("Draft cleared.")
			return nil
		},
	}
}
