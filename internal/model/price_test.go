package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriceSeries_SortedByDate(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }
	in := PriceSeries{
		{Date: d(2), Close: 102},
		{Date: d(1), Close: 101},
		{Date: d(3), Close: 103},
	}
	out := in.SortedByDate()

	assert.Equal(t, []float64{101, 102, 103}, out.Closes())
	// The receiver is untouched.
	assert.Equal(t, 102.0, in[0].Close)
}

func TestPriceSeries_SortStability(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	in := PriceSeries{
		{Date: d, Close: 1},
		{Date: d, Close: 2},
		{Date: d, Close: 3},
	}
	out := in.SortedByDate()
	assert.Equal(t, []float64{1, 2, 3}, out.Closes())
}

func TestPriceSeries_Extractors(t *testing.T) {
	s := PriceSeries{
		{Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 100},
		{Open: 2, High: 3, Low: 1.5, Close: 2.5, Volume: 200},
	}
	assert.Equal(t, []float64{1.5, 2.5}, s.Closes())
	assert.Equal(t, []float64{2, 3}, s.Highs())
	assert.Equal(t, []float64{0.5, 1.5}, s.Lows())
	assert.Equal(t, []float64{100, 200}, s.Volumes())
}
