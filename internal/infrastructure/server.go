package infrastructure

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Listen binds the listening socket for the configured port
func Listen(config Server) (net.Listener, error) {
	addr := ":" + strconv.Itoa(config.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("unable to listen on %s: %w", addr, err)
	}
	return ln, nil
}

// NewServer wraps handler so it answers both HTTP/1.1 and cleartext HTTP/2
func NewServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

// Serve logs the bound port and serves until the server is closed
func Serve(server *http.Server, ln net.Listener, logger *zap.Logger) error {
	port := ln.Addr().(*net.TCPAddr).Port
	logger.Info("Server running", zap.Int("port", port))
	return server.Serve(ln)
}
