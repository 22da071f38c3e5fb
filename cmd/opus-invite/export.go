package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"opus-invite/internal/codec"
	"opus-invite/internal/config"
	"opus-invite/internal/export"
	"opus-invite/internal/handler"
	"opus-invite/internal/share"
)

func init() {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export RSVP data or calendar files",
	}
	exportCmd.AddCommand(newExportCSVCmd(), newExportICSCmd())
	rootCmd.AddCommand(exportCmd)
}

func newExportCSVCmd() *cobra.Command {
	var invitationID string
	var outPath string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export RSVP entries as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(config.LoadConfig())
			if err != nil {
				return err
			}
			defer store.Close()

			csv, rows := handler.NewAdminHandler(store).ExportCSV(invitationID)
			if rows == 0 {
				return fmt.Errorf("no RSVP entries to export")
			}

			if outPath == "" {
				scope := invitationID
				if scope == "" {
					scope = "all"
				}
				outPath = fmt.Sprintf("rsvp-%s.csv", scope)
			}
			if err := os.WriteFile(outPath, []byte(csv), 0644); err != nil {
				return fmt.Errorf("failed to write CSV: %w", err)
			}
			fmt.Printf("Wrote %d rows to %s\n", rows, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&invitationID, "invite", "", "invitation id (empty exports everything)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default rsvp-<invite|all>.csv)")
	return cmd
}

func newExportICSCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "ics <token-or-link>",
		Short: "Export an invitation as a calendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := share.ParseInviteLink(args[0])
			if err != nil {
				return err
			}
			data, err := codec.Decode(token)
			var decodeErr *codec.DecodeError
			if errors.As(err, &decodeErr) {
				return fmt.Errorf("invalid invitation link: the link is damaged or incomplete")
			}
			if err != nil {
				return err
			}

			ics, err := export.BuildICS(data, time.Now())
			if err != nil {
				return fmt.Errorf("the invitation has no event date, cannot build a calendar file")
			}

			if outPath == "" {
				outPath = export.ICSFilename(data)
			}
			if err := os.WriteFile(outPath, []byte(ics), 0644); err != nil {
				return fmt.Errorf("failed to write calendar file: %w", err)
			}
			fmt.Printf("Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output file (default derived from the title)")
	return cmd
}
