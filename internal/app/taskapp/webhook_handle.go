package taskapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/IsaacDSC/hotelhook/internal/domain"
	"github.com/IsaacDSC/hotelhook/pkg/ctxlogger"
	"github.com/IsaacDSC/hotelhook/pkg/httpadapter"
)

const structuredPath = "structured"

var fallback = domain.TaskRecord{Task: domain.UnknownTask, RoomNumber: domain.UnknownRoom}

type Extractor interface {
	Name() string
	Extract(ctx context.Context, transcript string) (domain.TaskRecord, error)
}

type Notifier interface {
	Notify(ctx context.Context, message string) domain.Delivery
}

type Insights interface {
	Extracted(path string, ok bool)
	Delivered(d domain.Delivery)
	Observed(status int, started time.Time)
}

type RequestPayload struct {
	Transcript string `json:"transcript"`
	Task       string `json:"task"`
	RoomNumber string `json:"roomNumber"`
}

func (p RequestPayload) record() domain.TaskRecord {
	return domain.TaskRecord{Task: p.Task, RoomNumber: p.RoomNumber}
}

func (p RequestPayload) Validate() error {
	if p.record().Complete() {
		return nil
	}

	if strings.TrimSpace(p.Transcript) == "" {
		return domain.ErrMissingInput
	}

	return nil
}

type ResponsePayload struct {
	Task             string          `json:"task"`
	RoomNumber       string          `json:"room_number"`
	TelegramResponse domain.Delivery `json:"telegram_response"`
}

// CreateTask handles a guest request: it resolves the task and room, notifies
// housekeeping and echoes the result with the delivery outcome.
func CreateTask(extractor Extractor, notifier Notifier, insights Insights) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /webhook",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ctx := r.Context()
			l := ctxlogger.GetLogger(ctx)

			status := http.StatusOK
			defer func() { insights.Observed(status, started) }()

			reply := func(code int, v any) {
				status = code
				if err := httpadapter.JSON(w, code, v); err != nil {
					l.Error("failed to write response", "error", err.Error())
				}
			}

			var payload RequestPayload

			defer r.Body.Close()
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				l.Warn("invalid request body", "error", err.Error())
				reply(http.StatusBadRequest, httpadapter.ErrorBody{Error: "invalid request body"})
				return
			}

			if err := payload.Validate(); err != nil {
				reply(http.StatusBadRequest, httpadapter.ErrorBody{Error: "No task details or transcript provided"})
				return
			}

			record, err := resolve(ctx, extractor, insights, payload)
			var formatErr *domain.UnexpectedFormatError
			if errors.As(err, &formatErr) {
				l.Error("unexpected extraction output", "extractor", extractor.Name(), "response", formatErr.Raw)
				reply(http.StatusInternalServerError, httpadapter.ErrorBody{Error: "Unexpected response format", Response: formatErr.Raw})
				return
			}
			if err != nil {
				l.Error("failed to extract task", "extractor", extractor.Name(), "error", err.Error())
				reply(http.StatusInternalServerError, httpadapter.ErrorBody{Error: "Extraction failed"})
				return
			}

			delivery := notifier.Notify(ctx, domain.NewNotificationMessage(record, payload.Transcript))
			insights.Delivered(delivery)
			if !delivery.OK {
				l.Warn("task notification not delivered", "task", record.Task, "room_number", record.RoomNumber, "error", delivery.Error)
			} else {
				l.Info("task notification delivered", "task", record.Task, "room_number", record.RoomNumber)
			}

			reply(http.StatusOK, ResponsePayload{
				Task:             record.Task,
				RoomNumber:       record.RoomNumber,
				TelegramResponse: delivery,
			})
		},
	}
}

// resolve uses caller supplied fields as is when both are present and runs
// the extractor only to fill what is missing.
func resolve(ctx context.Context, extractor Extractor, insights Insights, payload RequestPayload) (domain.TaskRecord, error) {
	supplied := payload.record()
	if supplied.Complete() {
		insights.Extracted(structuredPath, true)
		return supplied, nil
	}

	extracted, err := extractor.Extract(ctx, payload.Transcript)
	insights.Extracted(extractor.Name(), err == nil)
	if err != nil {
		return domain.TaskRecord{}, fmt.Errorf("extract with %s: %w", extractor.Name(), err)
	}

	return supplied.Fill(extracted).Fill(fallback), nil
}
