package courses

import (
	"context"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
)

// GetSchoolCatalog returns the full course catalog of a school.
func GetSchoolCatalog(db *mongodb.DB, ctx context.Context, schoolId string) ([]Course, error) {
	coursesDb, err := db.GetCoursesBySchool(ctx, schoolId)
	if err != nil {
		return nil, err
	}

	catalog := make([]Course, 0, len(coursesDb))
	for _, c := range coursesDb {
		catalog = append(catalog, MapDbCourseToApiCourse(c))
	}

	return catalog, nil
}

// GetReviewCourses resolves the course picker for a new review of the
// professor, loading the catalog of the professor's school first.
func GetReviewCourses(db *mongodb.DB, ctx context.Context, professor mongodb.ProfessorDb) (ReviewCourses, error) {
	catalog, err := GetSchoolCatalog(db, ctx, professor.SchoolId)
	if err != nil {
		return ReviewCourses{}, err
	}

	return ResolveForReview(professor.Id, professor.Name, catalog), nil
}
