package handler_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/wearecreatives/api/internal/repository/memory"
	"github.com/wearecreatives/api/internal/validation"
)

// Handler tests run against real services over a fresh in-memory store. Mocks
// buy nothing here: the store is deterministic and constructing it is free.

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
