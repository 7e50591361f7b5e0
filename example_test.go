package queries_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TheBitDrifter/table"
	"github.com/codewriter-packages/queries"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows a compiled query moving every named entity
func Example_basic() {
	schema := table.Factory.NewSchema()
	storage := queries.Factory.NewStorage(schema)

	position := queries.FactoryNewComponent[Position]()
	velocity := queries.FactoryNewComponent[Velocity]()
	name := queries.FactoryNewComponent[Name]()

	storage.NewEntities(5, position)
	storage.NewEntities(3, position, velocity)

	entities, _ := storage.NewEntities(1, position, velocity, name)
	name.GetFromEntity(entities[0]).Value = "Player"
	*position.GetFromEntity(entities[0]) = Position{X: 10, Y: 20}
	*velocity.GetFromEntity(entities[0]) = Velocity{X: 1, Y: 2}

	move, err := queries.ForEach3(
		queries.Factory.NewQueryBuilder(storage).RequireAll(position, velocity, name),
		func(pos *Position, vel *Velocity, nme *Name) {
			pos.X += vel.X
			pos.Y += vel.Y
			fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)
		},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	move.Run()
	fmt.Printf("Matched %d entities\n", move.Matched())

	// Output:
	// Updated Player to position (11.0, 22.0)
	// Matched 1 entities
}

// Example_validation shows the errors reported when a query is declared wrongly
func Example_validation() {
	storage := queries.Factory.NewStorage(table.Factory.NewSchema())
	position := queries.FactoryNewComponent[Position]()

	_, err := queries.ForEach2(
		queries.Factory.NewQueryBuilder(storage).Require(position),
		func(*Position, *Velocity) {},
	)
	fmt.Println(err)

	_, err = queries.ForEach1(
		queries.Factory.NewQueryBuilder(storage).Require(position).Forbid(position).SkipValidation(true),
		func(*Position) {},
	)
	var conflict queries.DeclarationConflictError
	fmt.Println(errors.As(err, &conflict), err)

	// Output:
	// unproven component usage: queries_test.Velocity bound by the callback but not required
	// true declaration conflict: queries_test.Position both required and forbidden
}

type gravity struct {
	dt time.Duration
}

func (g *gravity) Configure(b *queries.QueryBuilder) error {
	_, err := queries.ForEach1(queries.With[Velocity](b), func(vel *Velocity) {
		vel.Y -= 10 * g.dt.Seconds()
	})
	return err
}

func (g *gravity) Tick(dt time.Duration) {
	g.dt = dt
}

// Example_scheduler shows systems driven by the scheduler once per tick
func Example_scheduler() {
	storage := queries.Factory.NewStorage(table.Factory.NewSchema())
	velocity := queries.FactoryNewComponent[Velocity]()
	entities, _ := storage.NewEntities(1, velocity)

	scheduler := queries.Factory.NewScheduler(storage)
	scheduler.Add("gravity", &gravity{})
	if err := scheduler.Configure(); err != nil {
		fmt.Println(err)
		return
	}
	for range 4 {
		scheduler.Update(context.Background(), 250*time.Millisecond)
	}
	fmt.Printf("vy = %.1f\n", velocity.GetFromEntity(entities[0]).Y)

	// Output:
	// vy = -10.0
}
