package setup

import (
	"fmt"
	"net/http"
	"time"

	"github.com/IsaacDSC/hotelhook/internal/app/health"
	"github.com/IsaacDSC/hotelhook/internal/app/taskapp"
	"github.com/IsaacDSC/hotelhook/internal/cfg"
	"github.com/IsaacDSC/hotelhook/internal/extractor"
	"github.com/IsaacDSC/hotelhook/internal/insights"
	"github.com/IsaacDSC/hotelhook/internal/notifier"
	"github.com/IsaacDSC/hotelhook/pkg/httpadapter"
	"github.com/IsaacDSC/hotelhook/pkg/httpclient"
)

// NewServer wires every route for conf; nothing is started.
func NewServer(conf cfg.Config) (*http.Server, error) {
	client := httpclient.NewHTTPClientWithLogging(conf.HTTPClientTimeout)

	ex, err := extractor.New(conf, client)
	if err != nil {
		return nil, fmt.Errorf("build extractor: %w", err)
	}

	recorder := insights.NewRecorder()
	telegram := notifier.NewTelegram(conf.Telegram, client)

	routes := []httpadapter.HttpHandle{
		health.GetHealthCheckHandler(),
		insights.GetMetricsHandler(recorder),
		taskapp.CreateTask(ex, telegram, recorder),
	}

	mux := http.NewServeMux()
	for _, route := range routes {
		mux.HandleFunc(route.Path, route.Handler)
	}

	return &http.Server{
		Addr:              conf.ApiPort.String(),
		Handler:           LoggerMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}
