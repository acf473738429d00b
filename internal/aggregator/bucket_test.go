package aggregator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nhl-team-insights/internal/domain/stats"
	"github.com/preston-bernstein/nhl-team-insights/internal/timeutil"
)

func gameLog(rows ...any) []stats.Split {
	out := make([]stats.Split, 0, len(rows)/2)
	for i := 0; i+1 < len(rows); i += 2 {
		out = append(out, stats.Split{Date: rows[i].(string), Stat: stats.Stat{Points: rows[i+1].(int)}})
	}
	return out
}

func TestBucketByMonthSumsPerMonth(t *testing.T) {
	log := gameLog("2021-01-05", 2, "2021-01-20", 1, "2021-02-03", 3)

	buckets, err := BucketByMonth(log)
	require.NoError(t, err)
	assert.Equal(t, []stats.MonthlyBucket{{Month: 0, Points: 3}, {Month: 1, Points: 3}}, buckets)
}

func TestBucketByMonthEmptyAndSingle(t *testing.T) {
	buckets, err := BucketByMonth(nil)
	require.NoError(t, err)
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)

	buckets, err = BucketByMonth(gameLog("2021-03-14", 4))
	require.NoError(t, err)
	assert.Equal(t, []stats.MonthlyBucket{{Month: 2, Points: 4}}, buckets)
}

func TestBucketByMonthFirstMonthIsNotJanuary(t *testing.T) {
	buckets, err := BucketByMonth(gameLog("2021-03-01", 1, "2021-03-02", 2))
	require.NoError(t, err)
	assert.Equal(t, []stats.MonthlyBucket{{Month: 2, Points: 3}}, buckets)
}

func TestBucketByMonthLeavesGapMonthsOut(t *testing.T) {
	buckets, err := BucketByMonth(gameLog("2021-01-10", 1, "2021-04-02", 2, "2021-04-09", 0))
	require.NoError(t, err)
	assert.Equal(t, []stats.MonthlyBucket{{Month: 0, Points: 1}, {Month: 3, Points: 2}}, buckets)
}

func TestBucketByMonthAcceptsDateTimes(t *testing.T) {
	buckets, err := BucketByMonth(gameLog("2021-05-01 19:00:00", 2))
	require.NoError(t, err)
	assert.Equal(t, []stats.MonthlyBucket{{Month: 4, Points: 2}}, buckets)
}

func TestBucketByMonthIsIdempotent(t *testing.T) {
	log := gameLog("2020-12-30", 1, "2021-01-02", 2, "2021-01-04", 1)
	first, err := BucketByMonth(log)
	require.NoError(t, err)
	second, err := BucketByMonth(log)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOldestFirstRestoresChronologicalOrder(t *testing.T) {
	newestFirst := gameLog("2021-02-03", 3, "2021-01-20", 1, "2021-01-05", 2)

	ordered := OldestFirst(newestFirst)
	assert.Equal(t, "2021-01-05", ordered[0].Date)
	assert.Equal(t, "2021-02-03", ordered[2].Date)
	assert.Equal(t, "2021-02-03", newestFirst[0].Date, "input must not be modified")
	assert.Equal(t, newestFirst, OldestFirst(ordered))

	buckets, err := BucketByMonth(ordered)
	require.NoError(t, err)
	assert.Equal(t, []stats.MonthlyBucket{{Month: 0, Points: 3}, {Month: 1, Points: 3}}, buckets)
}

func TestBucketByMonthRejectsBadDate(t *testing.T) {
	_, err := BucketByMonth(gameLog("2021-01-05", 1, "yesterday", 2))
	var pErr *timeutil.ParseError
	require.True(t, errors.As(err, &pErr), "expected ParseError, got %v", err)
	assert.Equal(t, "yesterday", pErr.Value)
}

func TestMonthLabels(t *testing.T) {
	assert.Empty(t, MonthLabels(nil))
	assert.Equal(t, []string{"Jan", "Feb"}, MonthLabels([]stats.MonthlyBucket{{Month: 0}, {Month: 1}}))
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr"}, MonthLabels([]stats.MonthlyBucket{{Month: 0}, {Month: 3}}))
	assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb"}, MonthLabels([]stats.MonthlyBucket{{Month: 9}, {Month: 11}, {Month: 1}}))
	assert.Equal(t, []string{"Mar"}, MonthLabels([]stats.MonthlyBucket{{Month: 2, Points: 5}}))
}
