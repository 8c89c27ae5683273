package main

import (
	"log"
	"net/http"
	"time"
)

func (app *application) serve() error {
	server := &http.Server{
		Addr:        app.Config.DevGatewayAddr(),
		Handler:     app.Handler.Routes(app.Config.TrustedOrigins()),
		IdleTimeout: time.Minute,
		ReadTimeout: 10 * time.Second,
		// no WriteTimeout: the connection event stream is long-lived
	}

	log.Printf("Starting dev gateway on %s", server.Addr)

	return server.ListenAndServe()
}
