// Package handler exposes the admin as a single serverless function. The
// router and its dependencies are built on the first request and reused by
// every warm invocation after it.
package handler

import (
	"net/http"
	"sync"

	"bookspace/config"
	"bookspace/di"
	"bookspace/shared/logger"
)

var (
	app     http.Handler
	appOnce sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	appOnce.Do(func() {
		cfg := config.Get()
		logger.InitLogger(cfg)
		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	// The platform rewrites every path to this function; restore the one
	// the browser asked for so chi routes on it.
	r.RequestURI = r.URL.RequestURI()

	app.ServeHTTP(w, r)
}
