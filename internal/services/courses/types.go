package courses

type Course struct {
	Id       string     `json:"id"`
	SchoolId string     `json:"schoolId"`
	Code     string     `json:"code"`
	Name     string     `json:"name"`
	TaughtBy []TaughtBy `json:"taughtBy"`
}

type TaughtBy struct {
	ProfessorId string `json:"professorId,omitempty"`
	Name        string `json:"name"`
}

// ReviewCourses is what the review form renders as the course picker.
// Fallback marks that nothing in the catalog is linked to the professor and
// the whole catalog is offered instead. Preselected is set when exactly one
// course matched.
type ReviewCourses struct {
	Courses     []Course `json:"courses"`
	Fallback    bool     `json:"fallback"`
	Preselected *string  `json:"preselected,omitempty"`
}
