package professors

import (
	"time"

	"github.com/Tofulati/hallpass-sub001/internal/services/ratings"
)

type Professor struct {
	Id        string    `json:"id"`
	SchoolId  string    `json:"schoolId"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfessorDetail is the professor page: the professor, the recomputed
// aggregate and the reviews in display order.
type ProfessorDetail struct {
	Professor Professor               `json:"professor"`
	Aggregate ratings.AggregateRating `json:"aggregate"`
	Ratings   []ratings.Rating        `json:"ratings"`
}

type AllProfessorsResponse struct {
	Professors []Professor `json:"professors"`
}

// NewProfessorRequest is the form for adding a professor missing from a
// school's directory.
type NewProfessorRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}
