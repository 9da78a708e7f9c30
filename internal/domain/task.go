package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	UnknownTask = "Unknown task"
	UnknownRoom = "Unknown room"

	// MissingValue is what the completion model is told to answer for a
	// field it cannot find.
	MissingValue = "0"
)

var ErrMissingInput = errors.New("no task details or transcript provided")

type TaskRecord struct {
	Task       string `json:"task"`
	RoomNumber string `json:"room_number"`
}

// Complete reports whether both fields carry a non-blank value.
func (r TaskRecord) Complete() bool {
	return strings.TrimSpace(r.Task) != "" && strings.TrimSpace(r.RoomNumber) != ""
}

// Fill keeps every non-blank field of r and takes the rest from other.
func (r TaskRecord) Fill(other TaskRecord) TaskRecord {
	if strings.TrimSpace(r.Task) == "" {
		r.Task = other.Task
	}
	if strings.TrimSpace(r.RoomNumber) == "" {
		r.RoomNumber = other.RoomNumber
	}
	return r
}

// UnexpectedFormatError is returned when the completion output does not hold
// the two "Label: value" lines the extractor expects.
type UnexpectedFormatError struct {
	Raw    string
	Reason string
}

func (e *UnexpectedFormatError) Error() string {
	return fmt.Sprintf("unexpected response format: %s", e.Reason)
}
