package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intRange(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate_FirstPageFull(t *testing.T) {
	page := Paginate(intRange(12), 1)

	assert.Len(t, page, PageSize)
	assert.Equal(t, 1, page[0])
	assert.Equal(t, 10, page[9])
}

func TestPaginate_LastPagePartial(t *testing.T) {
	page := Paginate(intRange(12), 2)

	assert.Len(t, page, 2)
	assert.Equal(t, []int{11, 12}, page)
}

func TestPaginate_OutOfRange(t *testing.T) {
	items := intRange(12)

	assert.Empty(t, Paginate(items, 0))
	assert.Empty(t, Paginate(items, -1))
	assert.Empty(t, Paginate(items, 3))
	assert.Empty(t, Paginate([]int{}, 1))
}

func TestPaginate_PagesReconstructInput(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 30} {
		items := intRange(n)

		var rebuilt []int
		for p := 1; ; p++ {
			page := Paginate(items, p)
			if len(page) == 0 {
				break
			}
			assert.LessOrEqual(t, len(page), PageSize)
			rebuilt = append(rebuilt, page...)
		}

		assert.Equal(t, items, append([]int{}, rebuilt...), "n=%d", n)
	}
}

func TestPartition_SplitsAroundNow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{
		now.Add(-48 * time.Hour),
		now.Add(72 * time.Hour),
		now.Add(-time.Minute),
		now.Add(time.Minute),
	}

	past, upcoming := Partition(times, func(ts time.Time) time.Time { return ts }, now)

	assert.Equal(t, []time.Time{times[0], times[2]}, past)
	assert.Equal(t, []time.Time{times[1], times[3]}, upcoming)
}

func TestPartition_BoundaryGoesToPast(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	past, upcoming := Partition([]time.Time{now}, func(ts time.Time) time.Time { return ts }, now)

	assert.Len(t, past, 1)
	assert.Empty(t, upcoming)
}

func TestPartition_TotalAndDisjoint(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var times []time.Time
	for i := -5; i <= 5; i++ {
		times = append(times, now.Add(time.Duration(i)*time.Hour))
	}

	past, upcoming := Partition(times, func(ts time.Time) time.Time { return ts }, now)

	assert.Equal(t, len(times), len(past)+len(upcoming))
	for _, ts := range past {
		assert.False(t, ts.After(now))
	}
	for _, ts := range upcoming {
		assert.True(t, ts.After(now))
	}
}

func TestPartition_EmptyInput(t *testing.T) {
	past, upcoming := Partition(nil, func(ts time.Time) time.Time { return ts }, time.Now())

	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}
