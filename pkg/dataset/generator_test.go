package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(123, 100)
	second := Generate(123, 100)

	require.Len(t, first, 100)
	assert.Equal(t, first, second)
}

func TestGenerate_SeedChangesData(t *testing.T) {
	a := Generate(123, 20)
	b := Generate(124, 20)

	assert.NotEqual(t, a[0].ID, b[0].ID)
}

func TestGenerate_FieldRanges(t *testing.T) {
	persons := Generate(123, 100)

	ids := make(map[string]struct{}, len(persons))
	for i, p := range persons {
		require.NoError(t, p.Validate())
		assert.Equal(t, i+1, p.Seq)
		assert.NotEmpty(t, p.FirstName)
		assert.NotEmpty(t, p.LastName)
		assert.GreaterOrEqual(t, p.Age, MinAge)
		assert.LessOrEqual(t, p.Age, MaxAge)
		assert.GreaterOrEqual(t, p.Visits, 0)
		assert.LessOrEqual(t, p.Visits, MaxVisits)
		assert.GreaterOrEqual(t, p.Progress, 0)
		assert.LessOrEqual(t, p.Progress, MaxProgress)
		assert.False(t, p.CreatedAt.Before(CreatedFrom), "created_at %s before window", p.CreatedAt)
		assert.False(t, p.CreatedAt.After(CreatedTo), "created_at %s after window", p.CreatedAt)
		ids[p.ID] = struct{}{}
	}
	assert.Len(t, ids, len(persons), "ids must be unique")
}

func TestGenerate_Empty(t *testing.T) {
	assert.Empty(t, Generate(123, 0))
	assert.NotNil(t, Generate(123, -1))
}
