package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/IsaacDSC/hotelhook/pkg/ctxlogger"
)

const redacted = "[REDACTED]"

// botTokenPath matches the token segment of Telegram Bot API paths.
var botTokenPath = regexp.MustCompile(`/bot[^/]+/`)

type HTTPClientTransport struct {
	Transport http.RoundTripper
}

func NewHTTPClientTransport(transport http.RoundTripper) *HTTPClientTransport {
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DisableKeepAlives:   false,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		}
	}
	return &HTTPClientTransport{
		Transport: transport,
	}
}

// RoundTrip logs the exchange with the logger carried by the request context.
func (t *HTTPClientTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := ctxlogger.GetLogger(req.Context())
	url := RedactURL(req.URL.String())

	var reqBody string
	if req.Body != nil {
		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			logger.Error("Failed to read request body", "error", err)
		} else {
			reqBody = string(bodyBytes)
		}

		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	}

	logger.Debug("HTTP client request started",
		"method", req.Method,
		"url", url,
		"headers", RedactHeaders(req.Header),
		"body", reqBody,
	)

	resp, err := t.Transport.RoundTrip(req)

	elapsed := time.Since(start)

	if err != nil {
		logger.Error("HTTP client request failed",
			"method", req.Method,
			"url", url,
			"error", RedactURL(err.Error()),
			"elapsed_time", elapsed,
		)
		return nil, err
	}

	var respBody string
	if resp.Body != nil {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			logger.Error("Failed to read response body", "error", err)
		} else {
			respBody = string(bodyBytes)
		}

		resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	}

	logger.Info("HTTP client request completed",
		"method", req.Method,
		"url", url,
		"status_code", resp.StatusCode,
		"response_body", respBody,
		"elapsed_time", elapsed,
	)

	return resp, nil
}

// RedactURL hides the bot token in Telegram Bot API URLs.
func RedactURL(s string) string {
	return botTokenPath.ReplaceAllString(s, "/bot"+redacted+"/")
}

func RedactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for _, k := range []string{"Authorization", "Api-Key", "X-Api-Key"} {
		if out.Get(k) != "" {
			out.Set(k, redacted)
		}
	}
	return out
}

// NewHTTPClientWithLogging returns the client shared by every outbound call.
func NewHTTPClientWithLogging(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: NewHTTPClientTransport(nil),
		Timeout:   timeout,
	}
}
