// Package rest exposes the liveness endpoint; the game itself is served
// over the websocket transport.
package rest

import (
	"fmt"
	"net/http"
	"time"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 30 * time.Second
)

// Start - serves GET /ping on the given port and blocks until the
// listener fails.
func Start(port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", pingHandler)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("serve rest: %w", err)
	}

	return nil
}
