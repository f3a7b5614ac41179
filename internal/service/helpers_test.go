package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/wearecreatives/api/internal/repository/memory"
	"github.com/wearecreatives/api/internal/validation"
)

// Service tests run against the real in-memory store rather than mocks; the
// store is cheap to construct and its contract is what the services rely on.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.New()
}

func newTestValidator(t *testing.T) *validation.Validator {
	t.Helper()
	return validation.New()
}
