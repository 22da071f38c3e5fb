package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"opus-invite/internal/models"
)

// invitationFlags mirrors the builder form: one flag per field.
type invitationFlags struct {
	eventType   string
	template    string
	title       string
	host        string
	date        string
	duration    int
	venue       string
	address     string
	phone       string
	account     string
	character   string
	message     string
	parking     string
	dressCode   string
	bringItem   string
	extraNotice string
	showQr      bool
	showAccount bool
	imagePath   string
}

func (f *invitationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.eventType, "type", "행사", "event type shown on the card")
	cmd.Flags().StringVar(&f.template, "template", models.TemplateClassic, "visual template (classic|minimal|warm|neon|hanji)")
	cmd.Flags().StringVar(&f.title, "title", "", "event title")
	cmd.Flags().StringVar(&f.host, "host", "", "host name")
	cmd.Flags().StringVar(&f.date, "date", "", "event date, e.g. 2025-06-01T12:00")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "event duration in minutes (default 120)")
	cmd.Flags().StringVar(&f.venue, "venue", "", "venue name")
	cmd.Flags().StringVar(&f.address, "address", "", "venue address")
	cmd.Flags().StringVar(&f.phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&f.account, "account", "", "payment account")
	cmd.Flags().StringVar(&f.character, "character", "", "decoration character tag")
	cmd.Flags().StringVar(&f.message, "message", "", "invitation message")
	cmd.Flags().StringVar(&f.parking, "parking", "", "parking / transit notice")
	cmd.Flags().StringVar(&f.dressCode, "dress-code", "", "dress code notice")
	cmd.Flags().StringVar(&f.bringItem, "bring", "", "items to bring")
	cmd.Flags().StringVar(&f.extraNotice, "notice", "", "extra notice")
	cmd.Flags().BoolVar(&f.showQr, "show-qr", false, "show a QR code on the invitation")
	cmd.Flags().BoolVar(&f.showAccount, "show-account", false, "show the payment account on the invitation")
	cmd.Flags().StringVar(&f.imagePath, "image", "", "background image file to embed")
}

func (f *invitationFlags) toConfig() (models.InvitationConfig, error) {
	cfg := models.InvitationConfig{
		EventType:   f.eventType,
		Template:    f.template,
		EventTitle:  strings.TrimSpace(f.title),
		HostName:    strings.TrimSpace(f.host),
		EventDate:   f.date,
		DurationMin: f.duration,
		VenueName:   strings.TrimSpace(f.venue),
		Address:     strings.TrimSpace(f.address),
		Phone:       strings.TrimSpace(f.phone),
		Account:     strings.TrimSpace(f.account),
		Character:   f.character,
		Message:     strings.TrimSpace(f.message),
		ParkingInfo: strings.TrimSpace(f.parking),
		DressCode:   strings.TrimSpace(f.dressCode),
		BringItem:   strings.TrimSpace(f.bringItem),
		ExtraNotice: strings.TrimSpace(f.extraNotice),
		ShowQr:      f.showQr,
		ShowAccount: f.showAccount,
	}

	if f.imagePath != "" {
		dataURL, err := imageDataURL(f.imagePath)
		if err != nil {
			return cfg, err
		}
		cfg.BackgroundImage = dataURL
	}
	return cfg, nil
}

// imageDataURL embeds the image file as a self-contained data URL, the same
// form the browser's file reader produces.
func imageDataURL(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	mime := "image/png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".gif":
		mime = "image/gif"
	case ".webp":
		mime = "image/webp"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
