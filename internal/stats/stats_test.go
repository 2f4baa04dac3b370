package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carplogAPI/internal/catch"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func makeCatch(id string, weight *float64, caughtAt time.Time) catch.Catch {
	return catch.Catch{
		ID:         id,
		UserID:     "user-1",
		FishName:   sptr("mirror carp"),
		Weight:     weight,
		WeightUnit: "kg",
		CaughtAt:   caughtAt,
	}
}

func TestBuildMonthly_AlwaysTwelveEntries(t *testing.T) {
	monthly := BuildMonthly(nil, 2025)

	require.Len(t, monthly, 12)
	for i, m := range monthly {
		assert.Equal(t, i+1, m.Month)
		assert.Equal(t, 2025, m.Year)
		assert.Equal(t, 0, m.TotalCount)
		assert.Equal(t, 0.0, m.TotalWeight)
		assert.Equal(t, 0.0, m.AverageWeight)
		assert.Nil(t, m.BiggestCatch)
	}
}

func TestBuildMonthly_WeightAggregation(t *testing.T) {
	june := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	catches := []catch.Catch{
		makeCatch("a", fptr(10), june),
		makeCatch("b", fptr(0), june.Add(time.Hour)),
		makeCatch("c", fptr(15), june.Add(2*time.Hour)),
		makeCatch("d", nil, june.Add(3*time.Hour)),
	}

	monthly := BuildMonthly(catches, 2025)
	require.Len(t, monthly, 12)

	jun := monthly[5]
	assert.Equal(t, 6, jun.Month)
	assert.Equal(t, 4, jun.TotalCount)
	assert.Equal(t, 25.0, jun.TotalWeight)
	assert.Equal(t, 12.5, jun.AverageWeight)
	require.NotNil(t, jun.BiggestCatch)
	assert.Equal(t, "c", jun.BiggestCatch.ID)
	assert.Equal(t, 15.0, jun.BiggestCatch.Weight)

	// Zero-weight and weightless catches still count, so the other
	// months must stay empty.
	assert.Equal(t, 0, monthly[0].TotalCount)
	assert.Nil(t, monthly[0].BiggestCatch)
}

func TestBuildMonthly_BiggestTieFirstEncountered(t *testing.T) {
	march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	catches := []catch.Catch{
		makeCatch("first", fptr(12.3), march),
		makeCatch("second", fptr(12.3), march.Add(time.Hour)),
	}

	monthly := BuildMonthly(catches, 2024)
	require.NotNil(t, monthly[2].BiggestCatch)
	assert.Equal(t, "first", monthly[2].BiggestCatch.ID)
}

func TestBuildMonthly_AverageRounding(t *testing.T) {
	jan := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	catches := []catch.Catch{
		makeCatch("a", fptr(10), jan),
		makeCatch("b", fptr(10), jan),
		makeCatch("c", fptr(11), jan),
	}

	monthly := BuildMonthly(catches, 2025)
	assert.Equal(t, 31.0, monthly[0].TotalWeight)
	assert.Equal(t, 10.33, monthly[0].AverageWeight)
}

func TestBuildYearly_SortedDescendingNoEmptyYears(t *testing.T) {
	catches := []catch.Catch{
		makeCatch("old", fptr(5), time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC)),
		makeCatch("new", fptr(8), time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)),
		makeCatch("mid", nil, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)),
	}

	yearly := BuildYearly(catches)
	require.Len(t, yearly, 3)

	assert.Equal(t, 2025, yearly[0].Year)
	assert.Equal(t, 2023, yearly[1].Year)
	assert.Equal(t, 2021, yearly[2].Year)

	// 2023 has one unweighted catch: counted, but no weight figures.
	assert.Equal(t, 1, yearly[1].TotalCount)
	assert.Equal(t, 0.0, yearly[1].TotalWeight)
	assert.Nil(t, yearly[1].BiggestCatch)
}

func TestBuildYearly_Empty(t *testing.T) {
	assert.Empty(t, BuildYearly(nil))
}
