package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// go run ./cmd/loadtest --target=http://localhost:5000/webhook --rate=20 --duration=30s
func main() {
	target := flag.String("target", "http://localhost:5000/webhook", "webhook url")
	freq := flag.Int("rate", 20, "requests per second")
	duration := flag.Duration("duration", 30*time.Second, "attack duration")
	structured := flag.Float64("structured", 0.3, "share of requests sending task and roomNumber")
	flag.Parse()

	faker := gofakeit.New(time.Now().UnixNano())

	rate := vegeta.Rate{Freq: *freq, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(createTargeter(faker, *target, *structured), rate, *duration, "Webhook Load Test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("99th percentile: %s\n", metrics.Latencies.P99)
	fmt.Printf("95th percentile: %s\n", metrics.Latencies.P95)
	fmt.Printf("Mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Max: %s\n", metrics.Latencies.Max)
	fmt.Printf("Requests per second: %.2f\n", metrics.Rate)
	fmt.Printf("Success ratio: %.2f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Total requests: %d\n", metrics.Requests)

	fmt.Println("\n=== Detailed report ===")
	reporter := vegeta.NewTextReporter(&metrics)
	if err := reporter.Report(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var requestTemplates = []string{
	"Could you bring a %s to room %d please",
	"I need a %s in room number %d",
	"Please send a %s to room #%d",
	"Hi, can you get me a %s? I'm in #%d",
	"We would like a %s for room %d",
}

type webhookPayload struct {
	Transcript string `json:"transcript"`
	Task       string `json:"task,omitempty"`
	RoomNumber string `json:"roomNumber,omitempty"`
}

// createTargeter generates a random guest request for each hit.
func createTargeter(faker *gofakeit.Faker, url string, structuredShare float64) vegeta.Targeter {
	return func(tgt *vegeta.Target) error {
		item := faker.Noun()
		room := faker.Number(100, 999)
		tmpl := requestTemplates[faker.Number(0, len(requestTemplates)-1)]

		payload := webhookPayload{Transcript: fmt.Sprintf(tmpl, item, room)}
		if faker.Float64Range(0, 1) < structuredShare {
			payload.Task = "Deliver " + item
			payload.RoomNumber = fmt.Sprint(room)
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}

		tgt.Method = http.MethodPost
		tgt.URL = url
		tgt.Body = body
		tgt.Header = http.Header{
			"Content-Type": {"application/json"},
			"X-Request-ID": {uuid.New().String()},
		}

		return nil
	}
}
