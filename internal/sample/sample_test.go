package sample_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsaathi/saathi/internal/sample"
)

var anchor = time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

func TestGenerate_Deterministic(t *testing.T) {
	for _, scenario := range sample.Scenarios() {
		t.Run(string(scenario), func(t *testing.T) {
			first, err := sample.Generate(scenario, anchor)
			require.NoError(t, err)
			require.NotEmpty(t, first)

			second, err := sample.Generate(scenario, anchor)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}
}

func TestGenerate_ValidRows(t *testing.T) {
	txs, err := sample.Generate(sample.ScenarioNormalWeek, anchor)
	require.NoError(t, err)

	end := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -6)

	for _, tx := range txs {
		assert.NotEmpty(t, tx.Product)
		assert.Positive(t, tx.Quantity)
		assert.Positive(t, tx.UnitPrice)
		assert.False(t, tx.Date.Before(start))
		assert.False(t, tx.Date.After(end))
	}
}

func TestGenerate_ScenarioShapes(t *testing.T) {
	normal, err := sample.Generate(sample.ScenarioNormalWeek, anchor)
	require.NoError(t, err)

	slow, err := sample.Generate(sample.ScenarioSlowWeek, anchor)
	require.NoError(t, err)

	boost, err := sample.Generate(sample.ScenarioWeekendBoost, anchor)
	require.NoError(t, err)

	assert.Less(t, len(slow), len(normal))
	assert.Greater(t, len(boost), len(normal))
}

func TestGenerate_UnknownScenario(t *testing.T) {
	_, err := sample.Generate("black-friday", anchor)
	assert.Error(t, err)
}
