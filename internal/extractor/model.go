package extractor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/IsaacDSC/hotelhook/internal/cfg"
	"github.com/IsaacDSC/hotelhook/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	systemInstruction = "Extract the task and room number from the following transcript. If the room number or task is missing, specify it as 0."
	defaultModel      = "gpt-4o-mini"
	maxTokens         = 100
	temperature       = 0.5
)

var ErrEmptyCompletion = errors.New("completion returned no choices")

// ModelExtractor asks a chat completion model for the task and room number.
type ModelExtractor struct {
	client openai.Client
	model  string
}

func NewModel(conf cfg.OpenAI, httpClient *http.Client) (*ModelExtractor, error) {
	if strings.TrimSpace(conf.APIKey) == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(conf.APIKey),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	if conf.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(conf.BaseURL))
	}

	model := conf.Model
	if model == "" {
		model = defaultModel
	}

	return &ModelExtractor{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

func (ModelExtractor) Name() string {
	return "model"
}

func (m *ModelExtractor) Extract(ctx context.Context, transcript string) (domain.TaskRecord, error) {
	completion, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(m.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(transcript),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return domain.TaskRecord{}, fmt.Errorf("chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return domain.TaskRecord{}, ErrEmptyCompletion
	}

	return ParseCompletion(completion.Choices[0].Message.Content)
}

// ParseCompletion reads "Label: value" from the first two non-blank lines:
// line one is the task, line two the room number.
func ParseCompletion(output string) (domain.TaskRecord, error) {
	raw := strings.TrimSpace(output)

	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	if len(lines) < 2 {
		return domain.TaskRecord{}, &domain.UnexpectedFormatError{
			Raw:    raw,
			Reason: fmt.Sprintf("expected 2 lines, got %d", len(lines)),
		}
	}

	task, ok := labelValue(lines[0])
	if !ok {
		return domain.TaskRecord{}, &domain.UnexpectedFormatError{Raw: raw, Reason: "task line has no label"}
	}

	room, ok := labelValue(lines[1])
	if !ok {
		return domain.TaskRecord{}, &domain.UnexpectedFormatError{Raw: raw, Reason: "room line has no label"}
	}

	return domain.TaskRecord{Task: task, RoomNumber: room}, nil
}

func labelValue(line string) (string, bool) {
	_, value, found := strings.Cut(line, ": ")
	if !found {
		return "", false
	}

	value = strings.TrimSpace(strings.Trim(strings.TrimSpace(value), "*"))
	if value == "" {
		value = domain.MissingValue
	}

	return value, true
}
