package utils

import (
	"fmt"
	"os"
)

const (
	defaultVideoHost = "meet.jit.si"
	roomPrefix       = "ClasesYa"
)

// RoomURL builds the virtual classroom link for a session's room token. The
// token is minted once at booking time and never reused, so the link is stable
// for the lifetime of the session.
func RoomURL(token string) string {
	host := os.Getenv("VIDEO_HOST")
	if host == "" {
		host = defaultVideoHost
	}
	return fmt.Sprintf("https://%s/%s-%s", host, roomPrefix, token)
}
