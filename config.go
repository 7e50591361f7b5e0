package queries

import (
	"log/slog"

	"github.com/TheBitDrifter/table"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/codewriter-packages/queries"

// Config holds global configuration for storages, queries and schedulers
var Config config = config{}

type config struct {
	tableEvents    table.TableEvents
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
}

// SetTableEvents configures the table event callbacks
func (c *config) SetTableEvents(te table.TableEvents) {
	c.tableEvents = te
}

// SetLogger replaces the logger; nil restores slog.Default
func (c *config) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// SetTracerProvider replaces the tracer provider; nil restores the otel global
func (c *config) SetTracerProvider(tp trace.TracerProvider) {
	c.tracerProvider = tp
}

func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

func (c *config) tracer() trace.Tracer {
	tp := c.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(instrumentationName)
}
