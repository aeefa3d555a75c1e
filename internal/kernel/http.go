// Package kernel assembles the HTTP handler: global middleware stack,
// operational endpoints, and the API route table.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/vyapar/app/routes"
	"github.com/shashiranjanraj/vyapar/config"
	"github.com/shashiranjanraj/vyapar/pkg/metrics"
	"github.com/shashiranjanraj/vyapar/pkg/middleware"
	"github.com/shashiranjanraj/vyapar/pkg/reqid"
	"github.com/shashiranjanraj/vyapar/pkg/router"
)

// Build constructs the full HTTP handler.
func Build() http.Handler {
	r := NewRouter()
	routes.RegisterAPI(r)
	return r.Handler()
}

// NewRouter returns a router with the global middleware stack and the
// operational endpoints mounted, but no API routes. Split out so the CLI
// can list routes without starting a server.
func NewRouter() *router.Router {
	r := router.New()

	// Outermost → innermost:
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery           — catches panics before they kill the goroutine
	//  3. Request ID         — inject unique ID before anything logs
	//  4. Logger             — logs request_id from context
	//  5. CORS
	//  6. Rate limiter       — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(config.CORSOrigins()...))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus scrape endpoint.
	r.HandleFunc("/metrics", metrics.Handler())

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok")) //nolint:errcheck
	})

	return r
}
