package ratings

import "github.com/Tofulati/hallpass-sub001/internal/mongodb"

func MapDbRatingToApiRating(dbRating mongodb.RatingDb) Rating {
	sets := VoteSets{Upvotes: dbRating.Upvotes, Downvotes: dbRating.Downvotes}

	return Rating{
		Id:                dbRating.Id,
		ProfessorId:       dbRating.ProfessorId,
		CourseId:          dbRating.CourseId,
		AuthorId:          dbRating.AuthorId,
		Difficulty:        dbRating.Difficulty,
		Enjoyment:         dbRating.Enjoyment,
		Understandability: dbRating.Understandability,
		Retake:            dbRating.Retake,
		TotalRating:       dbRating.TotalRating,
		Body:              dbRating.Body,
		Upvotes:           sets.Upvotes,
		Downvotes:         sets.Downvotes,
		Score:             sets.Score(),
		CreatedAt:         dbRating.CreatedAt,
	}
}
