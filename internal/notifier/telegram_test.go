package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IsaacDSC/hotelhook/internal/cfg"
	"github.com/IsaacDSC/hotelhook/internal/domain"
	"github.com/IsaacDSC/hotelhook/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverResponse struct {
	statusCode int
	body       string
}

func createTestServer(t *testing.T, resp serverResponse, got *sendMessageRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bot123:secret/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		if got != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}

		w.WriteHeader(resp.statusCode)
		w.Write([]byte(resp.body))
	}))
}

func newTestTelegram(apiRoot string) *Telegram {
	return NewTelegram(cfg.Telegram{
		BotToken: "123:secret",
		ChatID:   "-1001234",
		APIRoot:  apiRoot,
	}, httpclient.NewHTTPClientWithLogging(5*time.Second))
}

func TestTelegram_Notify(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse serverResponse
		wantOK         bool
		wantError      string
		wantDetails    string
	}{
		{
			name: "acknowledged message",
			serverResponse: serverResponse{
				statusCode: http.StatusOK,
				body:       `{"ok":true,"result":{"message_id":77}}`,
			},
			wantOK: true,
		},
		{
			name: "ok false with 200 status",
			serverResponse: serverResponse{
				statusCode: http.StatusOK,
				body:       `{"ok":false,"description":"weird"}`,
			},
			wantError:   domain.DeliveryRejected,
			wantDetails: `{"ok":false,"description":"weird"}`,
		},
		{
			name: "chat not found",
			serverResponse: serverResponse{
				statusCode: http.StatusBadRequest,
				body:       `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`,
			},
			wantError:   domain.DeliveryRejected,
			wantDetails: `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`,
		},
		{
			name: "unauthorized bot",
			serverResponse: serverResponse{
				statusCode: http.StatusUnauthorized,
				body:       `{"ok":false,"error_code":401,"description":"Unauthorized"}`,
			},
			wantError:   domain.DeliveryRejected,
			wantDetails: `{"ok":false,"error_code":401,"description":"Unauthorized"}`,
		},
		{
			name: "ok true with error status",
			serverResponse: serverResponse{
				statusCode: http.StatusInternalServerError,
				body:       `{"ok":true}`,
			},
			wantError:   domain.DeliveryRejected,
			wantDetails: `{"ok":true}`,
		},
		{
			name: "non json body",
			serverResponse: serverResponse{
				statusCode: http.StatusBadGateway,
				body:       `<html>bad gateway</html>`,
			},
			wantError:   domain.DeliveryRejected,
			wantDetails: `"<html>bad gateway</html>"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got sendMessageRequest
			server := createTestServer(t, tt.serverResponse, &got)
			defer server.Close()

			d := newTestTelegram(server.URL).Notify(context.Background(), "*New Task Assigned*")

			assert.Equal(t, "-1001234", got.ChatID)
			assert.Equal(t, "*New Task Assigned*", got.Text)
			assert.Equal(t, "Markdown", got.ParseMode)

			assert.Equal(t, tt.wantOK, d.OK)
			if tt.wantOK {
				assert.JSONEq(t, tt.serverResponse.body, string(d.Response))
				return
			}

			assert.Equal(t, tt.wantError, d.Error)
			b, err := json.Marshal(d.Details)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantDetails, string(b))
		})
	}
}

func TestTelegram_Notify_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	d := newTestTelegram(url).Notify(context.Background(), "hello")

	assert.False(t, d.OK)
	assert.Equal(t, domain.DeliveryFailed, d.Error)

	details, ok := d.Details.(string)
	require.True(t, ok)
	assert.NotEmpty(t, details)
	assert.NotContains(t, details, "secret")
}

func TestTelegram_Notify_Timeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	tg := NewTelegram(cfg.Telegram{BotToken: "123:secret", ChatID: "1", APIRoot: server.URL}, httpclient.NewHTTPClientWithLogging(50*time.Millisecond))

	d := tg.Notify(context.Background(), "hello")

	assert.False(t, d.OK)
	assert.Equal(t, domain.DeliveryFailed, d.Error)
}

func TestNewTelegram_DefaultAPIRoot(t *testing.T) {
	tg := NewTelegram(cfg.Telegram{BotToken: "abc", ChatID: "1"}, http.DefaultClient)
	assert.Equal(t, "https://api.telegram.org/botabc/sendMessage", tg.url)

	tg = NewTelegram(cfg.Telegram{BotToken: "abc", ChatID: "1", APIRoot: "http://local/"}, http.DefaultClient)
	assert.Equal(t, "http://local/botabc/sendMessage", tg.url)
}
