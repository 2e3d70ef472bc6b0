package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSim struct{ name string }

func (s stubSim) Name() string   { return s.name }
func (s stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s stubSim) Reset(int64)    {}
func (s stubSim) Step()          {}
func (s stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistryBuild(t *testing.T) {
	Register("stub-test", func(map[string]string) (Sim, error) { return stubSim{name: "stub-test"}, nil })
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	t.Cleanup(func() { delete(sims, "stub-test") })

	sim, err := Build("stub-test", nil)
	require.NoError(t, err)
	assert.Equal(t, "stub-test", sim.Name())
	assert.Contains(t, Names(), "stub-test")
	assert.NotContains(t, Names(), "")
	assert.NotContains(t, Names(), "nil-factory")

	_, err = Build("missing", nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `"missing"`))
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{{Key: "w", Value: "10"}}},
		{Name: "Terrain", Params: []Parameter{{Key: "dunes", Value: "true"}}},
	}}

	p, ok := snap.Lookup("dunes")
	require.True(t, ok)
	assert.Equal(t, "true", p.Value)

	_, ok = snap.Lookup("nope")
	assert.False(t, ok)
}
