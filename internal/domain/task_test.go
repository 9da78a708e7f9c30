package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRecord_Complete(t *testing.T) {
	assert.True(t, TaskRecord{Task: "Towels", RoomNumber: "204"}.Complete())
	assert.False(t, TaskRecord{Task: "Towels"}.Complete())
	assert.False(t, TaskRecord{RoomNumber: "204"}.Complete())
	assert.False(t, TaskRecord{Task: "  ", RoomNumber: "204"}.Complete())
}

func TestTaskRecord_Fill(t *testing.T) {
	extracted := TaskRecord{Task: "Extracted task", RoomNumber: "101"}

	t.Run("keeps supplied task", func(t *testing.T) {
		got := TaskRecord{Task: "Fresh sheets"}.Fill(extracted)
		assert.Equal(t, TaskRecord{Task: "Fresh sheets", RoomNumber: "101"}, got)
	})

	t.Run("keeps supplied room", func(t *testing.T) {
		got := TaskRecord{RoomNumber: "7"}.Fill(extracted)
		assert.Equal(t, TaskRecord{Task: "Extracted task", RoomNumber: "7"}, got)
	})

	t.Run("takes everything when empty", func(t *testing.T) {
		assert.Equal(t, extracted, TaskRecord{}.Fill(extracted))
	})
}

func TestUnexpectedFormatError(t *testing.T) {
	var err error = fmt.Errorf("extract: %w", &UnexpectedFormatError{Raw: "hello", Reason: "expected two lines"})

	var target *UnexpectedFormatError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "hello", target.Raw)
	assert.Contains(t, err.Error(), "expected two lines")
}

func TestNewNotificationMessage(t *testing.T) {
	record := TaskRecord{Task: "Bring towels", RoomNumber: "204"}

	t.Run("without transcript", func(t *testing.T) {
		msg := NewNotificationMessage(record, "")
		assert.Equal(t, "🏨 *New Task Assigned*\n\n📌 *Task:* Bring towels\n🏠 *Room Number:* 204", msg)
	})

	t.Run("with short transcript", func(t *testing.T) {
		msg := NewNotificationMessage(record, "towels to 204")
		assert.True(t, strings.HasSuffix(msg, "\n\n💬 *Original Request:* towels to 204..."))
	})

	t.Run("transcript excerpt is bounded", func(t *testing.T) {
		transcript := strings.Repeat("ñ", 150)
		msg := NewNotificationMessage(record, transcript)
		assert.Contains(t, msg, "*Original Request:* "+strings.Repeat("ñ", TranscriptExcerptLen)+"...")
		assert.NotContains(t, msg, strings.Repeat("ñ", TranscriptExcerptLen+1))
	})
}

func TestDelivery_MarshalJSON(t *testing.T) {
	t.Run("success returns the raw acknowledgment", func(t *testing.T) {
		ack := json.RawMessage(`{"ok":true,"result":{"message_id":42}}`)
		b, err := json.Marshal(Delivered(ack))
		require.NoError(t, err)
		assert.JSONEq(t, string(ack), string(b))
	})

	t.Run("failure nests error and details", func(t *testing.T) {
		d := DeliveryError(DeliveryRejected, map[string]any{"ok": false, "description": "chat not found"})
		b, err := json.Marshal(map[string]any{"telegram_response": d})
		require.NoError(t, err)
		assert.JSONEq(t, `{"telegram_response":{"error":"Failed to send message to Telegram","details":{"ok":false,"description":"chat not found"}}}`, string(b))
	})
}
