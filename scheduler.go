package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Scheduler is the harness that configures systems once and runs their queries
// every tick, in the order the systems were added.
type Scheduler struct {
	storage    Storage
	systems    []*QuerySystem
	byName     map[string]*QuerySystem
	config     SchedulerConfig
	configured bool
}

func newScheduler(storage Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
		byName:  make(map[string]*QuerySystem),
	}
}

func (s *Scheduler) Add(name string, system System) error {
	if s.configured {
		return SchedulerConfiguredError{System: name}
	}
	if _, exists := s.byName[name]; exists {
		return DuplicateSystemError{System: name}
	}
	qs := newQuerySystem(name, system, s.storage)
	s.systems = append(s.systems, qs)
	s.byName[name] = qs
	return nil
}

// ApplyConfig records cfg; it takes effect on Configure.
func (s *Scheduler) ApplyConfig(cfg SchedulerConfig) error {
	if s.configured {
		return SchedulerConfiguredError{}
	}
	s.config = cfg
	return nil
}

func (s *Scheduler) Systems() []*QuerySystem {
	return append([]*QuerySystem(nil), s.systems...)
}

func (s *Scheduler) System(name string) (*QuerySystem, bool) {
	qs, ok := s.byName[name]
	return qs, ok
}

// Configure runs every enabled system's Configure hook once. If any hook fails the
// scheduler stays unconfigured and no system keeps a compiled query.
func (s *Scheduler) Configure() error {
	if s.configured {
		return SchedulerConfiguredError{}
	}
	var errs []error
	for name := range s.config.Systems {
		if _, ok := s.byName[name]; !ok {
			errs = append(errs, fmt.Errorf("config names unknown system %q", name))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for _, qs := range s.systems {
		qs.enabled = s.config.enabled(qs.name)
		qs.skipValidation = s.config.skipValidation(qs.name)
		if !qs.enabled {
			Config.log().Debug("system disabled", "system", qs.name)
			continue
		}
		if err := qs.configure(); err != nil {
			errs = append(errs, fmt.Errorf("configure system %q: %w", qs.name, err))
		}
	}
	if len(errs) > 0 {
		for _, qs := range s.systems {
			qs.query = nil
		}
		return errors.Join(errs...)
	}
	s.configured = true
	return nil
}

// Update runs one tick. Each system receives dt, then its query runs to completion.
// A failing system does not stop the ones after it; all failures are joined.
// ctx carries tracing only; a tick is never interrupted.
func (s *Scheduler) Update(ctx context.Context, dt time.Duration) error {
	if !s.configured {
		return NotConfiguredError{}
	}
	tracer := Config.tracer()
	var errs []error
	for _, qs := range s.systems {
		if !qs.enabled {
			continue
		}
		_, span := tracer.Start(ctx, "queries.system",
			trace.WithAttributes(attribute.String("system.name", qs.name)),
		)
		err := qs.tick(dt)
		if qs.query != nil {
			span.SetAttributes(attribute.Int("query.visited", qs.query.Visited()))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			Config.log().Error("system failed", "system", qs.name, "error", err)
			errs = append(errs, fmt.Errorf("system %q: %w", qs.name, err))
		}
		span.End()
	}
	return errors.Join(errs...)
}
