package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/bullscows/internal/dependencies/mocks"
	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, model.DefaultCodeLength, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}
}

// QueueSecret makes the next generated secret equal to code
func (t *TestApp) QueueSecret(code string) {
	t.MockRandom.QueueDigits(code)
}
