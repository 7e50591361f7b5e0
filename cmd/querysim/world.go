package main

import (
	"math/rand/v2"
	"time"

	"github.com/codewriter-packages/queries"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Frozen struct {
	Ticks int
}

type Lifetime struct {
	Remaining int
}

type world struct {
	created int
}

// populate creates moving entities, a quarter as many frozen ones and a quarter as
// many short-lived ones.
func populate(storage queries.Storage, opts *runOptions) (world, error) {
	position := queries.FactoryNewComponent[Position]()
	velocity := queries.FactoryNewComponent[Velocity]()
	frozen := queries.FactoryNewComponent[Frozen]()
	lifetime := queries.FactoryNewComponent[Lifetime]()

	moving, err := storage.NewEntities(opts.Entities, position, velocity)
	if err != nil {
		return world{}, err
	}
	for _, en := range moving {
		*velocity.GetFromEntity(en) = Velocity{X: rand.Float64()*2 - 1, Y: rand.Float64()*2 - 1}
	}
	if _, err := storage.NewEntities(opts.Entities/4, position, velocity, frozen); err != nil {
		return world{}, err
	}
	doomed, err := storage.NewEntities(opts.Entities/4, position, lifetime)
	if err != nil {
		return world{}, err
	}
	for _, en := range doomed {
		lifetime.GetFromEntity(en).Remaining = opts.Lifetime
	}
	return world{created: len(moving) + opts.Entities/4 + len(doomed)}, nil
}

type movementSystem struct {
	dt float64
}

func (s *movementSystem) Configure(b *queries.QueryBuilder) error {
	b.RequireAll(
		queries.FactoryNewComponent[Position](),
		queries.FactoryNewComponent[Velocity](),
	).Forbid(queries.FactoryNewComponent[Frozen]())

	_, err := queries.ForEach2(b, func(pos *Position, vel *Velocity) {
		pos.X += vel.X * s.dt
		pos.Y += vel.Y * s.dt
	})
	return err
}

func (s *movementSystem) Tick(dt time.Duration) {
	s.dt = dt.Seconds()
}

type lifetimeSystem struct {
	storage queries.Storage
	expired int
	failed  error
}

func (s *lifetimeSystem) Configure(b *queries.QueryBuilder) error {
	_, err := queries.ForEachEntity1(queries.With[Lifetime](b), func(en queries.Entity, life *Lifetime) {
		life.Remaining--
		if life.Remaining > 0 {
			return
		}
		if err := s.storage.EnqueueDestroyEntities(en); err != nil && s.failed == nil {
			s.failed = err
			return
		}
		s.expired++
	})
	return err
}
