package infrastructure

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestListen_PortInUse(t *testing.T) {
	taken, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("unable to reserve a port: %v", err)
	}
	defer taken.Close()
	port := taken.Addr().(*net.TCPAddr).Port

	ln, err := Listen(Server{Port: port})
	if err == nil {
		ln.Close()
		t.Fatalf("expected error when binding port %d twice, got nil", port)
	}
}

func TestServe(t *testing.T) {
	ln, err := Listen(Server{Port: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port

	core, logs := observer.New(zap.InfoLevel)
	server := NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))

	done := make(chan error, 1)
	go func() {
		done <- Serve(server, ln, zap.New(core))
	}()

	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("expected body %q, got %q", "ok", body)
	}

	entries := logs.FilterField(zap.Int("port", port)).All()
	if len(entries) != 1 {
		t.Fatalf("expected one startup log entry with port %d, got %d", port, len(entries))
	}
	if entries[0].Message != "Server running" {
		t.Errorf("expected message %q, got %q", "Server running", entries[0].Message)
	}

	server.Close()
	select {
	case err := <-done:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("expected ErrServerClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Errorf("Timeout waiting for server to stop")
	}
}
