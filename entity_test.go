package queries

import (
	"errors"
	"testing"
)

func TestEntityComponentManagement(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	tests := []struct {
		name              string
		initialComponents []Component
		addComponents     []Component
		removeComponents  []Component
		finalCount        int
	}{
		{
			name:              "Add component",
			initialComponents: []Component{posComp},
			addComponents:     []Component{velComp},
			finalCount:        2,
		},
		{
			name:              "Remove component",
			initialComponents: []Component{posComp, velComp},
			removeComponents:  []Component{velComp},
			finalCount:        1,
		},
		{
			name:              "Add and remove",
			initialComponents: []Component{posComp},
			addComponents:     []Component{velComp, healthComp},
			removeComponents:  []Component{posComp},
			finalCount:        2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sto := newTestStorage(t)
			entity := mustEntities(t, sto, 1, tt.initialComponents...)[0]

			for _, comp := range tt.addComponents {
				if err := entity.AddComponent(comp); err != nil {
					t.Errorf("AddComponent() error = %v", err)
				}
			}
			for _, comp := range tt.removeComponents {
				if err := entity.RemoveComponent(comp); err != nil {
					t.Errorf("RemoveComponent() error = %v", err)
				}
			}

			if components := entity.Components(); len(components) != tt.finalCount {
				t.Errorf("Entity has %d components, want %d", len(components), tt.finalCount)
			}
		})
	}
}

func TestEntityComponentErrors(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	sto := newTestStorage(t)
	entity := mustEntities(t, sto, 1, posComp)[0]

	var exists ComponentExistsError
	if err := entity.AddComponent(posComp); !errors.As(err, &exists) {
		t.Errorf("AddComponent() of existing component error = %v, want ComponentExistsError", err)
	}
	var missing ComponentNotFoundError
	if err := entity.RemoveComponent(velComp); !errors.As(err, &missing) {
		t.Errorf("RemoveComponent() of absent component error = %v, want ComponentNotFoundError", err)
	} else if missing.Error() != "component does not exist on entity: queries.Velocity" {
		t.Errorf("unexpected message %q", missing.Error())
	}
}

func TestComponentValuesSurviveTransfer(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	sto := newTestStorage(t)
	entity := mustEntities(t, sto, 1, posComp)[0]

	pos := posComp.GetFromEntity(entity)
	pos.X, pos.Y = 1, 2

	if err := entity.AddComponent(velComp); err != nil {
		t.Fatalf("AddComponent() error = %v", err)
	}

	got := posComp.GetFromEntity(entity)
	if got.X != 1 || got.Y != 2 {
		t.Errorf("Position = {%v, %v}, want {1, 2}", got.X, got.Y)
	}
	if _, err := velComp.GetFromEntitySafe(entity); err != nil {
		t.Errorf("GetFromEntitySafe() error = %v", err)
	}
}
