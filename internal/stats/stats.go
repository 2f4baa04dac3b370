package stats

import (
	"math"
	"sort"
	"time"

	"carplogAPI/internal/catch"
)

type MonthlyStats struct {
	Month         int           `json:"month"`
	Year          int           `json:"year"`
	TotalCount    int           `json:"total_count"`
	TotalWeight   float64       `json:"total_weight"`
	AverageWeight float64       `json:"average_weight"`
	BiggestCatch  *BiggestCatch `json:"biggest_catch"`
}

type YearlyStats struct {
	Year          int           `json:"year"`
	TotalCount    int           `json:"total_count"`
	TotalWeight   float64       `json:"total_weight"`
	AverageWeight float64       `json:"average_weight"`
	BiggestCatch  *BiggestCatch `json:"biggest_catch"`
}

// BiggestCatch is the heaviest weighted catch of a bucket.
type BiggestCatch struct {
	ID       string    `json:"id"`
	Weight   float64   `json:"weight"`
	FishName *string   `json:"fish_name"`
	CaughtAt time.Time `json:"caught_at"`
}

// BuildMonthly partitions a year's catches by capture month and reduces
// each bucket. It always returns exactly 12 entries, January through
// December, even when every bucket is empty.
func BuildMonthly(catches []catch.Catch, year int) []MonthlyStats {
	buckets := make(map[int][]catch.Catch)
	for _, c := range catches {
		m := int(c.CaughtAt.UTC().Month())
		buckets[m] = append(buckets[m], c)
	}

	out := make([]MonthlyStats, 0, 12)
	for month := 1; month <= 12; month++ {
		count, total, avg, biggest := reduce(buckets[month])
		out = append(out, MonthlyStats{
			Month:         month,
			Year:          year,
			TotalCount:    count,
			TotalWeight:   total,
			AverageWeight: avg,
			BiggestCatch:  biggest,
		})
	}
	return out
}

// BuildYearly buckets catches by capture year, newest year first. Years
// with no catches are never synthesized.
func BuildYearly(catches []catch.Catch) []YearlyStats {
	buckets := make(map[int][]catch.Catch)
	for _, c := range catches {
		y := c.CaughtAt.UTC().Year()
		buckets[y] = append(buckets[y], c)
	}

	years := make([]int, 0, len(buckets))
	for y := range buckets {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	out := make([]YearlyStats, 0, len(years))
	for _, y := range years {
		count, total, avg, biggest := reduce(buckets[y])
		out = append(out, YearlyStats{
			Year:          y,
			TotalCount:    count,
			TotalWeight:   total,
			AverageWeight: avg,
			BiggestCatch:  biggest,
		})
	}
	return out
}

// reduce aggregates one bucket. Every catch counts toward the total;
// only weighted catches (weight present and > 0) contribute to the
// weight figures. Ties for biggest go to the first catch encountered.
func reduce(catches []catch.Catch) (count int, totalWeight, averageWeight float64, biggest *BiggestCatch) {
	count = len(catches)

	weighted := 0
	var sum float64
	var best *catch.Catch
	for i := range catches {
		c := &catches[i]
		if !c.Weighted() {
			continue
		}
		weighted++
		sum += *c.Weight
		if best == nil || *c.Weight > *best.Weight {
			best = c
		}
	}

	if weighted == 0 {
		return count, 0.0, 0.0, nil
	}

	biggest = &BiggestCatch{
		ID:       best.ID,
		Weight:   *best.Weight,
		FishName: best.FishName,
		CaughtAt: best.CaughtAt,
	}
	return count, round2(sum), round2(sum / float64(weighted)), biggest
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
