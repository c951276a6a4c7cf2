package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trailer struct {
	UnitNo string
	Type   string
	Status string
}

var trailers = []trailer{
	{UnitNo: "TRL-001", Type: "Dry Van", Status: "active"},
	{UnitNo: "TRL-002", Type: "Reefer", Status: "maintenance"},
	{UnitNo: "FLT-100", Type: "Flatbed", Status: "active"},
}

func searchByUnitNo(t trailer) string { return t.UnitNo }
func byStatus(t trailer) string       { return t.Status }

func TestApply_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Apply(trailers, Query[trailer]{
		Term:         "trl-0",
		SearchFields: []func(trailer) string{searchByUnitNo},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "TRL-001", got[0].UnitNo)
	assert.Equal(t, "TRL-002", got[1].UnitNo)
}

func TestApply_EmptyTermMatchesAll(t *testing.T) {
	got := Apply(trailers, Query[trailer]{
		SearchFields: []func(trailer) string{searchByUnitNo},
	})
	assert.Len(t, got, 3)
}

func TestApply_ExactFilter(t *testing.T) {
	got := Apply(trailers, Query[trailer]{
		Filters: []Exact[trailer]{{Value: "active", Field: byStatus}},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "TRL-001", got[0].UnitNo)
	assert.Equal(t, "FLT-100", got[1].UnitNo)

	// An unselected filter is vacuously true.
	got = Apply(trailers, Query[trailer]{
		Filters: []Exact[trailer]{{Value: "", Field: byStatus}},
	})
	assert.Len(t, got, 3)
}

func TestApply_SearchAndFilterCombine(t *testing.T) {
	got := Apply(trailers, Query[trailer]{
		Term:         "trl",
		SearchFields: []func(trailer) string{searchByUnitNo},
		Filters:      []Exact[trailer]{{Value: "active", Field: byStatus}},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "TRL-001", got[0].UnitNo)
}

func TestApply_MultipleSearchFields(t *testing.T) {
	got := Apply(trailers, Query[trailer]{
		Term: "reef",
		SearchFields: []func(trailer) string{
			searchByUnitNo,
			func(t trailer) string { return t.Type },
		},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "TRL-002", got[0].UnitNo)
}

func TestApply_PreservesOrderAndInput(t *testing.T) {
	input := append([]trailer(nil), trailers...)
	got := Apply(input, Query[trailer]{Term: "l"})
	_ = got
	assert.Equal(t, trailers, input)
}
