package domain

import "encoding/json"

const (
	DeliveryRejected = "Failed to send message to Telegram"
	DeliveryFailed   = "Telegram request failed"
)

// Delivery is the outcome of one notification attempt. It is reported in-band
// and never turns the request into a failure.
type Delivery struct {
	OK       bool
	Response json.RawMessage
	Error    string
	Details  any
}

func Delivered(ack json.RawMessage) Delivery {
	return Delivery{OK: true, Response: ack}
}

func DeliveryError(msg string, details any) Delivery {
	return Delivery{Error: msg, Details: details}
}

// MarshalJSON writes the raw acknowledgment on success and {error, details}
// otherwise.
func (d Delivery) MarshalJSON() ([]byte, error) {
	if d.OK {
		if len(d.Response) == 0 {
			return []byte(`{"ok":true}`), nil
		}
		return d.Response, nil
	}

	return json.Marshal(struct {
		Error   string `json:"error"`
		Details any    `json:"details"`
	}{Error: d.Error, Details: d.Details})
}
