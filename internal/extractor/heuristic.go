package extractor

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/IsaacDSC/hotelhook/internal/domain"
)

const maxTaskLen = 50

// Order matters: the first pattern that matches wins, not the most specific one.
var roomPatterns = []*regexp.Regexp{
	regexp.MustCompile(`room (\d+)`),
	regexp.MustCompile(`room number (\d+)`),
	regexp.MustCompile(`room #(\d+)`),
	regexp.MustCompile(`#(\d+)`),
}

var taskIndicators = []string{
	"need",
	"want",
	"please",
	"could you",
	"can you",
	"would like",
}

type HeuristicExtractor struct{}

func NewHeuristic() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

func (HeuristicExtractor) Name() string {
	return "heuristic"
}

// Extract never fails; unresolved fields keep their "Unknown ..." defaults.
func (h HeuristicExtractor) Extract(_ context.Context, transcript string) (domain.TaskRecord, error) {
	lower := strings.ToLower(transcript)

	return domain.TaskRecord{
		Task:       findTask(lower),
		RoomNumber: findRoom(lower),
	}, nil
}

func findRoom(lower string) string {
	for _, p := range roomPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			return m[1]
		}
	}
	return domain.UnknownRoom
}

func findTask(lower string) string {
	for _, indicator := range taskIndicators {
		_, rest, found := strings.Cut(lower, indicator)
		if !found {
			continue
		}

		rest = strings.TrimSpace(rest)
		if rest == "" {
			continue
		}

		return truncateTask(capitalize(rest))
	}
	return domain.UnknownTask
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func truncateTask(s string) string {
	if utf8.RuneCountInString(s) <= maxTaskLen {
		return s
	}
	return domain.Truncate(s, maxTaskLen) + "..."
}
