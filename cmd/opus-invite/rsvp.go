package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"opus-invite/internal/codec"
	"opus-invite/internal/config"
	"opus-invite/internal/handler"
	"opus-invite/internal/models"
	"opus-invite/internal/share"
)

func init() {
	var sub handler.Submission
	var decline bool

	cmd := &cobra.Command{
		Use:   "rsvp <token-or-link>",
		Short: "Submit an RSVP response for an invitation",
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

			appCfg := config.LoadConfig()
			store, err := openStore(appCfg)
			if err != nil {
				return err
			}
			defer store.Close()

			sub.Attending = !decline
			h := handler.NewRSVPHandler(store, models.SourceCLI)
			entry, wasUpdate, err := h.Submit(codec.DeriveInvitationID(token), data.EventTitle, sub)
			if err != nil {
				return err
			}

			if wasUpdate {
				fmt.Printf("✅ %s님 RSVP가 업데이트되었습니다.\n", entry.GuestName)
			} else {
				fmt.Printf("✅ %s님 RSVP가 저장되었습니다. 감사합니다!\n", entry.GuestName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sub.GuestName, "name", "", "guest name (required)")
	cmd.Flags().StringVar(&sub.GuestPhone, "phone", "", "guest phone")
	cmd.Flags().StringVar(&sub.Side, "side", "", "relationship to the host")
	cmd.Flags().BoolVar(&decline, "decline", false, "decline instead of attending")
	cmd.Flags().IntVar(&sub.GuestCount, "count", 1, "number of guests")
	cmd.Flags().StringVar(&sub.Meal, "meal", "", "meal choice")
	cmd.Flags().StringVar(&sub.Note, "note", "", "note for the host")

	rootCmd.AddCommand(cmd)
}
