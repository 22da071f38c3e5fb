package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"opus-invite/internal/codec"
	"opus-invite/internal/config"
	"opus-invite/internal/share"
)

func init() {
	var flags invitationFlags
	var fromDraft bool
	var saveDraft bool
	var qrTerminal bool
	var qrPNG string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Encode an invitation and print its shareable link",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg := config.LoadConfig()

			invitation, err := flags.toConfig()
			if err != nil {
				return err
			}

			if fromDraft {
				store, err := openStore(appCfg)
				if err != nil {
					return err
				}
				defer store.Close()

				draft, ok := store.Draft()
				if !ok {
					return fmt.Errorf("no draft is stored")
				}
				invitation = draft
			}

			token, err := codec.Encode(invitation)
			if err != nil {
				return err
			}
			id := codec.DeriveInvitationID(token)
			inviteLink := share.InviteLink(appCfg.InvitePage, token)
			adminLink := share.AdminLink(appCfg.AdminPage, id, invitation.EventTitle)

			fmt.Printf("Invitation ID: %s\n", id)
			fmt.Printf("Invite link:   %s\n", inviteLink)
			fmt.Printf("Admin link:    %s\n", adminLink)
			fmt.Println("\nShare message:")
			fmt.Println(share.ShareMessage(invitation, inviteLink))

			if qrTerminal {
				text, err := share.QRText(inviteLink)
				if err != nil {
					return err
				}
				fmt.Println("\n" + text)
			}
			if qrPNG != "" {
				if err := share.QRPNG(inviteLink, qrPNG); err != nil {
					return err
				}
				fmt.Printf("\nQR code written to %s\n", qrPNG)
			}

			if saveDraft {
				store, err := openStore(appCfg)
				if err != nil {
					return err
				}
				defer store.Close()

				if err := store.SaveDraft(invitation); err != nil {
					return err
				}
				fmt.Println("Draft saved.")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&fromDraft, "from-draft", false, "encode the stored draft instead of the flags")
	cmd.Flags().BoolVar(&saveDraft, "save-draft", false, "also store this invitation as the draft")
	cmd.Flags().BoolVar(&qrTerminal, "qr", false, "print the invite link as a terminal QR code")
	cmd.Flags().StringVar(&qrPNG, "qr-png", "", "write the invite link QR code to a PNG file")

	rootCmd.AddCommand(cmd)
}
