package routes_test

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"teamflow-backend/internal/testutils"
)

// TestMain ensures the shared Postgres container is purged when this
// package's tests finish, even on interrupt.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("received interrupt signal, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
