package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSimulator_Defaults(t *testing.T) {
	// GIVEN the flag defaults registered at init
	// WHEN the simulator is assembled
	s, err := buildSimulator()
	require.NoError(t, err)

	// THEN it carries the built-in catalog and the default policy knobs
	assert.Len(t, s.Store.Books, 6)
	assert.Equal(t, 3, s.Config.Stock.RestockThreshold)
	assert.Equal(t, 10, s.Config.Stock.MaxStockLevel)
	assert.Equal(t, int64(42), s.Config.Seed)
}

func TestBuildSimulator_BadScenarioPath(t *testing.T) {
	old := scenarioPath
	scenarioPath = "does/not/exist.yaml"
	defer func() { scenarioPath = old }()

	_, err := buildSimulator()
	assert.Error(t, err)
}
