package ratings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRollup(t *testing.T) {
	t.Run("zero ratings returns the no-data sentinel", func(t *testing.T) {
		aggregate := Rollup(nil)
		require.False(t, aggregate.HasData)
		require.Zero(t, aggregate.RatingCount)
	})

	t.Run("means per metric and retake percentage", func(t *testing.T) {
		allRatings := []Rating{
			{Difficulty: 1, Enjoyment: 4, Understandability: 3, Retake: true, TotalRating: 4.25},
			{Difficulty: 5, Enjoyment: 2, Understandability: 5, Retake: true, TotalRating: 3.25},
		}

		aggregate := Rollup(allRatings)
		require.True(t, aggregate.HasData)
		require.Equal(t, 2, aggregate.RatingCount)
		require.Equal(t, 3.0, aggregate.Difficulty)
		require.Equal(t, 3.0, aggregate.Enjoyment)
		require.Equal(t, 4.0, aggregate.Understandability)
		require.Equal(t, 3.75, aggregate.TotalRating)
		require.Equal(t, 100.0, aggregate.RetakePercentage)
	})

	t.Run("retake percentage counts only retake-true", func(t *testing.T) {
		allRatings := []Rating{
			{Difficulty: 2, Enjoyment: 3, Understandability: 3, Retake: true, TotalRating: 3},
			{Difficulty: 2, Enjoyment: 3, Understandability: 3, Retake: false, TotalRating: 2},
			{Difficulty: 2, Enjoyment: 3, Understandability: 3, Retake: false, TotalRating: 2},
			{Difficulty: 2, Enjoyment: 3, Understandability: 3, Retake: false, TotalRating: 2},
		}

		aggregate := Rollup(allRatings)
		require.Equal(t, 25.0, aggregate.RetakePercentage)
	})
}

func TestSortForDisplay(t *testing.T) {
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("vote score descending", func(t *testing.T) {
		allRatings := []Rating{
			{Id: "low", Score: -1, CreatedAt: base},
			{Id: "high", Score: 3, CreatedAt: base},
			{Id: "mid", Score: 1, CreatedAt: base},
		}

		SortForDisplay(allRatings)
		require.Equal(t, "high", allRatings[0].Id)
		require.Equal(t, "mid", allRatings[1].Id)
		require.Equal(t, "low", allRatings[2].Id)
	})

	t.Run("ties broken by most recent first", func(t *testing.T) {
		allRatings := []Rating{
			{Id: "older", Score: 2, CreatedAt: base},
			{Id: "newer", Score: 2, CreatedAt: base.Add(time.Hour)},
		}

		SortForDisplay(allRatings)
		require.Equal(t, "newer", allRatings[0].Id)
		require.Equal(t, "older", allRatings[1].Id)
	})
}
