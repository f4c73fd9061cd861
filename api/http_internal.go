package api

import (
	"context"
	"net/http"
	"time"

	"github.com/codek7-services/codek7-backend/config"
	"github.com/codek7-services/codek7-backend/log"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ListenAndServeInternal runs the internal privileged HTTP listener:
// healthcheck and Prometheus metrics.
func ListenAndServeInternal(ctx context.Context, addr string) error {
	router := NewWorkerAPIRouterInternal()
	server := http.Server{Addr: addr, Handler: router}
	ctx, cancel := context.WithCancel(ctx)

	log.LogNoRunID(
		"Starting video worker internal API",
		"version", config.Version,
		"host", addr,
	)

	var err error
	go func() {
		err = server.ListenAndServe()
		cancel()
	}()

	<-ctx.Done()
	if err != nil {
		return err
	}

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func NewWorkerAPIRouterInternal() *httprouter.Router {
	router := httprouter.New()

	router.GET("/ok", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	router.Handler("GET", "/metrics", promhttp.Handler())

	return router
}
