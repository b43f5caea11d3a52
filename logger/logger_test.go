package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlabs/flow-common/logger"
)

func TestConfigureLoggingWithOptions_Text(t *testing.T) {
	var buf bytes.Buffer

	log := logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "flow-common-test",
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	require.NotNil(t, log)

	log.Info("configured", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "configured")
	assert.Contains(t, out, "key=value")
}

func TestConfigureLoggingWithOptions_JSON(t *testing.T) {
	var buf bytes.Buffer

	log := logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "flow-common-test",
		JSON:      true,
		Output:    &buf,
	})

	log.Info("json output")

	assert.Contains(t, buf.String(), `"msg":"json output"`)
}

func TestGet_CarriesContextValues(t *testing.T) {
	var buf bytes.Buffer

	logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "flow-common-test",
		Output:    &buf,
	})

	ctx := logger.With(context.Background(), "candidate", "steps")

	logger.Get(ctx).Info("validated")

	out := buf.String()
	assert.Contains(t, out, "candidate=steps")
	assert.Contains(t, out, "subsystem=flow-common-test")
}

func TestGet_Muted(t *testing.T) {
	var buf bytes.Buffer

	logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "flow-common-test",
		Output:    &buf,
	})

	ctx := logger.WithMuted(context.Background(), true)

	logger.Get(ctx).Error("should be suppressed")

	assert.Empty(t, buf.String())
}

func TestGetSubsystem_Override(t *testing.T) {
	t.Parallel()

	ctx := logger.WithSubsystem(context.Background(), "override")

	assert.Equal(t, "override", logger.GetSubsystem(ctx))
}

func TestGet_NoContext(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
	})

	// Route output through the test log.
	slog.SetDefault(slogt.New(t))

	log := logger.Get()
	require.NotNil(t, log)

	log.Info("routed through slogt")
}

func TestGetPodName(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, logger.GetPodName())
}
