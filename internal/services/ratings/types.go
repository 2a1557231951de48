package ratings

import "time"

type Rating struct {
	Id                string    `json:"id"`
	ProfessorId       string    `json:"professorId"`
	CourseId          string    `json:"courseId"`
	AuthorId          *string   `json:"authorId,omitempty"`
	Difficulty        int       `json:"difficulty"`
	Enjoyment         int       `json:"enjoyment"`
	Understandability int       `json:"understandability"`
	Retake            bool      `json:"retake"`
	TotalRating       float64   `json:"totalRating"`
	Body              string    `json:"body"`
	Upvotes           []string  `json:"upvotes"`
	Downvotes         []string  `json:"downvotes"`
	Score             int       `json:"score"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewRatingRequest carries the review form. Sub-ratings and retake are
// pointers so that a missing answer is distinguishable from a zero value.
type NewRatingRequest struct {
	CourseId          string `json:"courseId"`
	Difficulty        *int   `json:"difficulty"`
	Enjoyment         *int   `json:"enjoyment"`
	Understandability *int   `json:"understandability"`
	Retake            *bool  `json:"retake"`
	Body              string `json:"body"`
	Anonymous         bool   `json:"anonymous"`
}

// VoteSets holds the two disjoint voter-id sets of one rating.
type VoteSets struct {
	Upvotes   []string `json:"upvotes"`
	Downvotes []string `json:"downvotes"`
}

// Score is derived on read and never stored.
func (v VoteSets) Score() int {
	return len(v.Upvotes) - len(v.Downvotes)
}

type VoteAction string

const (
	VoteActionUp     VoteAction = "upvote"
	VoteActionDown   VoteAction = "downvote"
	VoteActionRemove VoteAction = "remove"
)

type VoteRequest struct {
	Action VoteAction `json:"action"`
}

type VoteResponse struct {
	RatingId  string   `json:"ratingId"`
	Upvotes   []string `json:"upvotes"`
	Downvotes []string `json:"downvotes"`
	Score     int      `json:"score"`
}

// AggregateRating is derived from the full rating set of one professor and
// never persisted. The numeric fields are meaningless when HasData is false.
type AggregateRating struct {
	Difficulty        float64 `json:"difficulty"`
	Enjoyment         float64 `json:"enjoyment"`
	Understandability float64 `json:"understandability"`
	TotalRating       float64 `json:"totalRating"`
	RetakePercentage  float64 `json:"retakePercentage"`
	RatingCount       int     `json:"ratingCount"`
	HasData           bool    `json:"hasData"`
}
