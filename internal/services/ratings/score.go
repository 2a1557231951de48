package ratings

const (
	minSubRating = 1
	maxSubRating = 5
)

// ComputeTotalRating derives the composite score of one review. Difficulty
// is inverted before averaging: a low difficulty is a positive signal.
// Retake counts as 5 when true and 1 when false, so the result always lands
// in [1,5].
func ComputeTotalRating(difficulty, enjoyment, understandability int, retake bool) (float64, error) {
	for _, sub := range []int{difficulty, enjoyment, understandability} {
		if sub < minSubRating || sub > maxSubRating {
			return 0, ErrSubRatingOutOfRange
		}
	}

	invertedDifficulty := 6 - difficulty

	retakeScore := 1
	if retake {
		retakeScore = 5
	}

	total := float64(invertedDifficulty+enjoyment+understandability+retakeScore) / 4
	return total, nil
}

// ValidateNewRating checks the review form before anything is sent to the
// store. A missing sub-rating is a validation failure, never a default.
func ValidateNewRating(req NewRatingRequest) error {
	if req.CourseId == "" {
		return ErrNoCourseSelected
	}
	if req.Difficulty == nil || req.Enjoyment == nil || req.Understandability == nil || req.Retake == nil {
		return ErrMissingSubRating
	}
	if req.Body == "" {
		return ErrEmptyBody
	}
	return nil
}
