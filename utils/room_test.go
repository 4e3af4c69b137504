package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomURLDefaultHost(t *testing.T) {
	t.Setenv("VIDEO_HOST", "")

	url := RoomURL("abc-123")
	assert.Equal(t, "https://meet.jit.si/ClasesYa-abc-123", url)
}

func TestRoomURLHostOverride(t *testing.T) {
	t.Setenv("VIDEO_HOST", "video.example.com")

	url := RoomURL("abc-123")
	assert.Equal(t, "https://video.example.com/ClasesYa-abc-123", url)
}
