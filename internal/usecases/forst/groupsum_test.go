package forst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupAndSum(t *testing.T) {
	type row struct {
		zone  string
		month int
		value float64
	}
	type key struct {
		zone  string
		month int
	}

	rows := []row{
		{zone: "WEST", month: 1, value: 10},
		{zone: "WEST", month: 1, value: 5},
		{zone: "WEST", month: 2, value: 7},
		{zone: "EAST", month: 1, value: 3},
		{zone: "", month: 1, value: 100},
	}

	groups := GroupAndSum(rows,
		func(r row) (key, bool) { return key{zone: r.zone, month: r.month}, r.zone != "" },
		func(r row) float64 { return r.value },
	)

	assert.Len(t, groups, 3)
	assert.Equal(t, Total{Sum: 15, Count: 2}, groups[key{"WEST", 1}])
	assert.Equal(t, Total{Sum: 7, Count: 1}, groups[key{"WEST", 2}])
	assert.Equal(t, Total{Sum: 3, Count: 1}, groups[key{"EAST", 1}])
	assert.Equal(t, Total{}, groups[key{"NORTH", 1}])
}

func TestGroupAndSum_Empty(t *testing.T) {
	groups := GroupAndSum([]int(nil),
		func(i int) (int, bool) { return i, true },
		func(i int) float64 { return float64(i) },
	)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
