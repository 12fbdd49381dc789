package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudedude2015501/SmartTick/internal/model"
)

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 10.0, PercentChange(100, 110))
	assert.Equal(t, -10.0, PercentChange(100, 90))
	assert.Equal(t, 33.33, PercentChange(3, 4))
	assert.Equal(t, 0.0, PercentChange(0, 5))
	assert.Equal(t, 0.0, PercentChange(-1, 5))
}

func TestAnnualizedReturn_OneYear(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	series := model.PriceSeries{
		{Date: start, Close: 100},
		{Date: start.AddDate(1, 0, 0), Close: 110},
	}
	got := AnnualizedReturn(series)
	require.NotNil(t, got)
	assert.Equal(t, 10.0, *got)
}

func TestAnnualizedReturn_TooShortSpan(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	series := model.PriceSeries{
		{Date: start, Close: 100},
		{Date: start.AddDate(0, 0, 10), Close: 110},
	}
	assert.Nil(t, AnnualizedReturn(series))
}

func TestAnnualizedReturn_DegenerateInputs(t *testing.T) {
	assert.Nil(t, AnnualizedReturn(nil))
	assert.Nil(t, AnnualizedReturn(model.PriceSeries{{Close: 100}}))

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	series := model.PriceSeries{
		{Date: start, Close: 0},
		{Date: start.AddDate(1, 0, 0), Close: 110},
	}
	assert.Nil(t, AnnualizedReturn(series))
}
