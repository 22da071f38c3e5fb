package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"opus-invite/internal/config"
	"opus-invite/internal/export"
	"opus-invite/internal/handler"
	"opus-invite/internal/ledger"
)

func init() {
	rootCmd.AddCommand(newListCmd(), newDeleteCmd(), newClearCmd())
}

func newListCmd() *cobra.Command {
	var invitationID string
	var q ledger.Query

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show RSVP responses and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(config.LoadConfig())
			if err != nil {
				return err
			}
			defer store.Close()

			admin := handler.NewAdminHandler(store)
			entries, stats := admin.List(invitationID, q)

			if invitationID == "" {
				fmt.Println("Showing the entire ledger (no invitation filter).")
			} else {
				fmt.Printf("Invitation: %s\n", invitationID)
			}
			fmt.Printf("Responses: %d  참석: %d  불참: %d  총 인원: %d  식사 예정 인원: %d\n\n",
				stats.Total, stats.Attending, stats.Declined, stats.GuestTotal, stats.MealTotal)

			if len(entries) == 0 {
				fmt.Println("조건에 맞는 응답이 없습니다.")
				return nil
			}

			fmt.Println(strings.Repeat("-", 72))
			for _, e := range entries {
				fmt.Printf("%s  %s  %s  %s  인원 %d  %s\n",
					export.FormatTimestamp(e.CreatedAt),
					e.GuestName,
					orDefault(e.GuestPhone, "-"),
					e.Attending,
					e.GuestCount,
					orDefault(e.Note, "-"))
				fmt.Printf("  id=%s  side=%s  meal=%s  invitation=%s\n", e.ID, e.Side, e.Meal, e.InvitationID)
				fmt.Println(strings.Repeat("-", 72))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&invitationID, "invite", "", "invitation id (empty shows all)")
	cmd.Flags().StringVar(&q.Keyword, "search", "", "keyword over name/phone/side/meal/note/title")
	cmd.Flags().StringVar(&q.Attending, "attend", ledger.FilterAll, "attendance filter (참석|불참|all)")
	cmd.Flags().StringVar(&q.Meal, "meal", ledger.FilterAll, "meal filter (all disables)")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a single RSVP entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(config.LoadConfig())
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := handler.NewAdminHandler(store).DeleteEntry(args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Println("No entry matched that id.")
				return nil
			}
			fmt.Println("Entry deleted.")
			return nil
		},
	}
}

func newClearCmd() *cobra.Command {
	var invitationID string
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all RSVP entries for an invitation (or everything)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(config.LoadConfig())
			if err != nil {
				return err
			}
			defer store.Close()

			admin := handler.NewAdminHandler(store)
			affected := admin.CountByInvitation(invitationID)
			if affected == 0 {
				fmt.Println("Nothing to delete.")
				return nil
			}

			if !yes {
				scope := fmt.Sprintf("invitation %s", invitationID)
				if invitationID == "" {
					scope = "the ENTIRE ledger"
				}
				fmt.Printf("This deletes %d RSVP entries from %s. Continue? (y/N): ", affected, scope)
				scanner := bufio.NewScanner(os.Stdin)
				if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			removed, err := admin.ClearInvitation(invitationID)
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d entries.\n", removed)
			return nil
		},
	}

	cmd.Flags().StringVar(&invitationID, "invite", "", "invitation id (empty clears the whole ledger)")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
