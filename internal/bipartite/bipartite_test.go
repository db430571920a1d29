package bipartite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcflow/flowplan/internal/bipartite"
)

func TestPerfectMatchFindsAssignment(t *testing.T) {
	// left 0 -> {0,1}, left 1 -> {1}, left 2 -> {0,2}
	compat := func(i, j int) bool {
		switch i {
		case 0:
			return j == 0 || j == 1
		case 1:
			return j == 1
		case 2:
			return j == 0 || j == 2
		}

		return false
	}

	assignment, ok := bipartite.PerfectMatch(3, 3, compat)
	require.True(t, ok)
	seen := map[int]bool{}
	for _, j := range assignment {
		assert.False(t, seen[j], "right vertex reused")
		seen[j] = true
	}
}

func TestPerfectMatchFailsWhenImpossible(t *testing.T) {
	// both left vertices only compatible with right vertex 0.
	compat := func(i, j int) bool { return j == 0 }
	_, ok := bipartite.PerfectMatch(2, 2, compat)
	assert.False(t, ok)
}

func TestPerfectMatchRejectsWhenLeftExceedsRight(t *testing.T) {
	_, ok := bipartite.PerfectMatch(3, 2, func(i, j int) bool { return true })
	assert.False(t, ok)
}

func TestPermutationMatchAgreesWithPerfectMatch(t *testing.T) {
	cases := []struct {
		n, m   int
		compat bipartite.Compat
	}{
		{2, 2, func(i, j int) bool { return i != j }},
		{3, 3, func(i, j int) bool { return j == 0 }},
		{2, 3, func(i, j int) bool { return (i+j)%2 == 0 }},
	}

	for _, c := range cases {
		_, wantOK := bipartite.PerfectMatch(c.n, c.m, c.compat)
		_, gotOK := bipartite.PermutationMatch(c.n, c.m, c.compat)
		assert.Equal(t, wantOK, gotOK)
	}
}
