package domain

import (
	"fmt"
	"strings"
)

const TranscriptExcerptLen = 100

func NewNotificationMessage(record TaskRecord, transcript string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏨 *New Task Assigned*\n\n📌 *Task:* %s\n🏠 *Room Number:* %s", record.Task, record.RoomNumber)

	if strings.TrimSpace(transcript) != "" {
		fmt.Fprintf(&b, "\n\n💬 *Original Request:* %s...", Truncate(transcript, TranscriptExcerptLen))
	}

	return b.String()
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
