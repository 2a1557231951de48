package ratings

import "sort"

// Rollup combines all reviews of one professor into summary statistics.
// Zero ratings yields the HasData=false sentinel; callers must branch on it
// before trusting the numeric fields.
func Rollup(allRatings []Rating) AggregateRating {
	if len(allRatings) == 0 {
		return AggregateRating{}
	}

	var difficulty, enjoyment, understandability, total float64
	retakeCount := 0
	for _, r := range allRatings {
		difficulty += float64(r.Difficulty)
		enjoyment += float64(r.Enjoyment)
		understandability += float64(r.Understandability)
		total += r.TotalRating
		if r.Retake {
			retakeCount++
		}
	}

	n := float64(len(allRatings))
	return AggregateRating{
		Difficulty:        difficulty / n,
		Enjoyment:         enjoyment / n,
		Understandability: understandability / n,
		TotalRating:       total / n,
		RetakePercentage:  100 * float64(retakeCount) / n,
		RatingCount:       len(allRatings),
		HasData:           true,
	}
}

// SortForDisplay orders ratings for a reader: vote score descending, most
// recent first on ties. Votes change between views, so this is recomputed on
// every display and never stored.
func SortForDisplay(allRatings []Rating) {
	sort.SliceStable(allRatings, func(i, j int) bool {
		if allRatings[i].Score != allRatings[j].Score {
			return allRatings[i].Score > allRatings[j].Score
		}
		return allRatings[i].CreatedAt.After(allRatings[j].CreatedAt)
	})
}
