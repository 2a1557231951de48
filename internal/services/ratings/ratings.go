package ratings

import (
	"context"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
)

// AddRating validates the review form, derives the composite score and
// persists the review. authorId is dropped from the stored document when the
// review is posted anonymously.
func AddRating(db *mongodb.DB, ctx context.Context, professorId, authorId string, req NewRatingRequest) (Rating, error) {
	if err := ValidateNewRating(req); err != nil {
		return Rating{}, err
	}

	total, err := ComputeTotalRating(*req.Difficulty, *req.Enjoyment, *req.Understandability, *req.Retake)
	if err != nil {
		return Rating{}, err
	}

	courseExists, err := db.CourseExists(ctx, req.CourseId)
	if err != nil {
		return Rating{}, err
	}
	if !courseExists {
		return Rating{}, ErrNoCourseSelected
	}

	ratingDb := mongodb.RatingDb{
		ProfessorId:       professorId,
		CourseId:          req.CourseId,
		Difficulty:        *req.Difficulty,
		Enjoyment:         *req.Enjoyment,
		Understandability: *req.Understandability,
		Retake:            *req.Retake,
		TotalRating:       total,
		Body:              req.Body,
	}

	if !req.Anonymous {
		exists, err := db.RatingExists(ctx, authorId, professorId, req.CourseId)
		if err != nil {
			return Rating{}, err
		}
		if exists {
			return Rating{}, ErrRatingAlreadyExists
		}
		ratingDb.AuthorId = &authorId
	}

	created, err := db.AddRating(ctx, ratingDb)
	if err != nil {
		return Rating{}, err
	}

	return MapDbRatingToApiRating(created), nil
}

// GetProfessorRatings returns the professor's reviews in display order
// together with the recomputed aggregate.
func GetProfessorRatings(db *mongodb.DB, ctx context.Context, professorId string) ([]Rating, AggregateRating, error) {
	ratingsDb, err := db.GetRatingsByProfessorId(ctx, professorId)
	if err != nil {
		return nil, AggregateRating{}, err
	}

	allRatings := make([]Rating, 0, len(ratingsDb))
	for _, r := range ratingsDb {
		allRatings = append(allRatings, MapDbRatingToApiRating(r))
	}

	aggregate := Rollup(allRatings)
	SortForDisplay(allRatings)

	return allRatings, aggregate, nil
}

// GetRatingById retrieves a single rating by its ID
func GetRatingById(db *mongodb.DB, ctx context.Context, ratingId string) (Rating, error) {
	ratingDb, err := db.GetRatingById(ctx, ratingId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Rating{}, ErrRatingNotFound
		}
		return Rating{}, err
	}

	return MapDbRatingToApiRating(ratingDb), nil
}
