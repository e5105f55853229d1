package chart_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsaathi/saathi/internal/chart"
	"github.com/shopsaathi/saathi/internal/kpi"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestTopProductsBar(t *testing.T) {
	png, err := chart.TopProductsBar([]kpi.ProductRevenue{
		{Product: "Coffee", Revenue: 6000, Quantity: 3},
		{Product: "Tea", Revenue: 3000, Quantity: 3},
	})
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestTopProductsBar_NoData(t *testing.T) {
	_, err := chart.TopProductsBar(nil)
	assert.Error(t, err)
}

func TestDailyRevenueLine(t *testing.T) {
	png, err := chart.DailyRevenueLine([]kpi.DayRevenue{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Revenue: 3000},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Revenue: 6000},
		{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Revenue: 4500},
	})
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestDailyRevenueLine_TooFewPoints(t *testing.T) {
	_, err := chart.DailyRevenueLine([]kpi.DayRevenue{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Revenue: 3000},
	})
	assert.Error(t, err)

	_, err = chart.DailyRevenueLine(nil)
	assert.Error(t, err)
}
