package tracing

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"dsld/internal/platform/config"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	prev := otel.GetTracerProvider()
	sr := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(NewProvider(1, sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return sr
}

func TestStartQueryWithoutProvider(t *testing.T) {
	ctx, span := StartQuery(context.Background(), "trainings", "summary")
	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() { End(span, errors.New("boom")) })
}

func TestEndRecordsFailure(t *testing.T) {
	sr := recordSpans(t)

	_, span := StartQuery(context.Background(), "offices", "list")
	End(span, errors.New("connection refused"))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	got := spans[0]
	assert.Equal(t, "offices.list", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "connection refused", got.Status().Description)
	assert.Contains(t, got.Attributes(), attribute.String("dsld.dataset", "offices"))
	assert.Contains(t, got.Attributes(), attribute.String("dsld.operation", "list"))
	require.Len(t, got.Events(), 1)
	assert.Equal(t, "exception", got.Events()[0].Name)
}

func TestEndLeavesSuccessUnset(t *testing.T) {
	sr := recordSpans(t)

	_, span := StartQuery(context.Background(), "offices", "list")
	End(span, nil)

	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, codes.Unset, sr.Ended()[0].Status().Code)
	assert.Empty(t, sr.Ended()[0].Events())
}

func TestSetupDisabledInstallsNothing(t *testing.T) {
	prev := otel.GetTracerProvider()
	shutdown, err := Setup(config.TracingConfig{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Same(t, prev, otel.GetTracerProvider())
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupRejectsUnknownExporter(t *testing.T) {
	_, err := Setup(config.TracingConfig{Enabled: true, Exporter: "zipkin", SampleRatio: 1}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetupExportsToWriter(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := Setup(config.TracingConfig{Enabled: true, Exporter: "stdout", SampleRatio: 1}, &buf)
	require.NoError(t, err)

	_, span := StartQuery(context.Background(), "trainings", "summary")
	End(span, nil)
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), "trainings.summary")
	assert.Contains(t, buf.String(), "dsld.dataset")
}
