package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigMetrics(t *testing.T) {
	// Registration happens against the default registry, so the component
	// name must be unique within the test binary.
	m := NewConfigMetrics("testcomponent")

	assert.NotPanics(t, func() {
		m.RecordLoadTimestamp()
		m.RecordValidationError("cron_schedule")
		m.RecordFallback("cron_schedule")
		m.SetFallbackActive(true)
		m.SetFallbackActive(false)
	})
}
