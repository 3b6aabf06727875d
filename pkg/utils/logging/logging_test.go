package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/ecotravel/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("info", buf)
	gt.V(t, logger).NotNil()

	logger.Info("generation started", "city", "Kyoto")
	gt.S(t, buf.String()).Contains("generation started")
	gt.S(t, buf.String()).Contains("Kyoto")
}

func TestLevels(t *testing.T) {
	tests := []struct {
		level       string
		expectDebug bool
	}{
		{"debug", true},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"DEBUG", true},
		{"bogus", false}, // falls back to info
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.New(tc.level, buf)

			logger.Debug("debug message")
			if tc.expectDebug {
				gt.S(t, buf.String()).Contains("debug message")
			} else {
				gt.S(t, buf.String()).NotContains("debug message")
			}
		})
	}
}

func TestContextPlumbing(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("debug", buf)

	ctx := logging.With(context.Background(), logger)
	gt.Equal(t, logging.From(ctx), logger)

	// Without a logger the default is returned
	gt.V(t, logging.From(context.Background())).NotNil()
}
