package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"opus-invite/internal/codec"
	"opus-invite/internal/export"
	"opus-invite/internal/share"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <token-or-link>",
		Short: "Decode an invitation and render it",
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

			id := codec.DeriveInvitationID(token)

			title := data.EventTitle
			if title == "" {
				title = "초대장"
			}
			fmt.Printf("[%s] %s\n", data.EventType, title)
			if dday := export.DdayLabel(data.EventDate, time.Now()); dday != "" {
				fmt.Println(dday)
			}
			if data.HostName != "" {
				fmt.Printf("초대자: %s\n", data.HostName)
			}
			fmt.Printf("일시: %s\n", export.FormatEventDate(data.EventDate))
			fmt.Printf("장소: %s\n", orDefault(data.VenueName, "장소 미정"))
			fmt.Printf("주소: %s\n", orDefault(data.Address, "주소 미입력"))
			fmt.Printf("연락처: %s\n", orDefault(data.Phone, "연락처 미입력"))
			fmt.Println(orDefault(data.Message, "소중한 날, 함께해 주세요."))

			if data.ShowAccount && data.Account != "" {
				fmt.Printf("💳 축의/회비 계좌: %s\n", data.Account)
			}

			if notices := export.NoticeItems(data); len(notices) > 0 {
				fmt.Println("\n안내:")
				for _, item := range notices {
					fmt.Printf("  - %s\n", item)
				}
			}

			if links := share.BuildMapLinks(data.Address); links != nil {
				fmt.Println("\n지도:")
				fmt.Printf("  네이버 지도: %s\n", links.Naver)
				fmt.Printf("  카카오맵:   %s\n", links.Kakao)
				fmt.Printf("  구글 지도:  %s\n", links.Google)
			}

			if calURL, err := export.GoogleCalendarURL(data); err == nil {
				fmt.Printf("\n캘린더에 추가: %s\n", calURL)
			}

			fmt.Printf("\nInvitation ID: %s\n", id)
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
