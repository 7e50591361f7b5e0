package queries

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeIDs(types []ComponentType) []ComponentTypeID {
	out := make([]ComponentTypeID, len(types))
	for i, t := range types {
		out[i] = t.TypeID()
	}
	return out
}

func TestBuilderChaining(t *testing.T) {
	a, b, c := FactoryNewComponent[compA](), FactoryNewComponent[compB](), FactoryNewComponent[compC]()

	builder := Factory.NewQueryBuilder(newTestStorage(t))
	same := builder.
		Require(a).
		RequireAll(b, a, b).
		Forbid(c).
		ForbidAll(c, c).
		Also(nil).
		SkipValidation(false)
	require.Same(t, builder, same)

	criteria := builder.Criteria()
	if diff := cmp.Diff([]ComponentTypeID{a.TypeID(), b.TypeID()}, typeIDs(criteria.Required())); diff != "" {
		t.Errorf("required mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ComponentTypeID{c.TypeID()}, typeIDs(criteria.Forbidden())); diff != "" {
		t.Errorf("forbidden mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, criteria.extra)
}

func TestBuilderGenericHelpers(t *testing.T) {
	builder := Factory.NewQueryBuilder(newTestStorage(t))
	With[compD](Without[compE](builder))

	criteria := builder.Criteria()
	assert.Equal(t, []ComponentTypeID{FactoryNewComponent[compD]().TypeID()}, typeIDs(criteria.Required()))
	assert.Equal(t, []ComponentTypeID{FactoryNewComponent[compE]().TypeID()}, typeIDs(criteria.Forbidden()))
}

func TestCriteriaSnapshot(t *testing.T) {
	a, b := FactoryNewComponent[compA](), FactoryNewComponent[compB]()
	builder := Factory.NewQueryBuilder(newTestStorage(t)).Require(a)

	snapshot := builder.Criteria()
	builder.Require(b)

	assert.Len(t, snapshot.Required(), 1)
	assert.Len(t, builder.Criteria().Required(), 2)
}

func TestBuilderConflictIsDeferred(t *testing.T) {
	a := FactoryNewComponent[compA]()

	// Declaring a conflict never fails at the builder itself
	builder := Factory.NewQueryBuilder(newTestStorage(t)).Require(a).Forbid(a)
	assert.Len(t, builder.Criteria().Required(), 1)
	assert.Len(t, builder.Criteria().Forbidden(), 1)
}
