package aggregator

import (
	"fmt"
	"slices"
	"time"

	"github.com/preston-bernstein/nhl-team-insights/internal/domain/stats"
	"github.com/preston-bernstein/nhl-team-insights/internal/timeutil"
)

// OldestFirst returns a reversed copy of a newest-first game log.
func OldestFirst(splits []stats.Split) []stats.Split {
	out := slices.Clone(splits)
	slices.Reverse(out)
	return out
}

// BucketByMonth sums points per calendar month over an oldest-first game log.
// A bucket is emitted each time the month changes and once more at the end.
// Months without games produce no bucket, and a month seen again later starts a new bucket.
func BucketByMonth(splits []stats.Split) ([]stats.MonthlyBucket, error) {
	buckets := make([]stats.MonthlyBucket, 0)
	if len(splits) == 0 {
		return buckets, nil
	}

	first, err := splitMonth(splits[0])
	if err != nil {
		return nil, err
	}
	month, sum := first, 0
	for _, split := range splits {
		m, err := splitMonth(split)
		if err != nil {
			return nil, err
		}
		if m != month {
			buckets = append(buckets, stats.MonthlyBucket{Month: month, Points: sum})
			month, sum = m, 0
		}
		sum += split.Stat.Points
	}
	return append(buckets, stats.MonthlyBucket{Month: month, Points: sum}), nil
}

func splitMonth(split stats.Split) (int, error) {
	t, err := timeutil.ParseAPIDate(split.Date)
	if err != nil {
		return 0, fmt.Errorf("game log date: %w", err)
	}
	return int(t.Month()) - 1, nil
}

// MonthLabels names every month from the first bucket to the last, wrapping past December.
// Gap months are labeled even though they have no bucket.
func MonthLabels(buckets []stats.MonthlyBucket) []string {
	labels := make([]string, 0)
	if len(buckets) == 0 {
		return labels
	}
	start := buckets[0].Month
	end := buckets[len(buckets)-1].Month
	span := (end-start+12)%12 + 1
	for i := 0; i < span; i++ {
		labels = append(labels, time.Month((start+i)%12+1).String()[:3])
	}
	return labels
}
