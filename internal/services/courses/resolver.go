package courses

// ResolveForReview picks the courses offered as context for a new review of
// the given professor. A course matches when its taught-by list carries the
// professor's id, or an entry matching the display name for catalog data
// that predates id linkage. An unlinked professor must not block a reviewer:
// an empty match falls back to the entire catalog.
func ResolveForReview(professorId, professorName string, catalog []Course) ReviewCourses {
	matched := make([]Course, 0, len(catalog))
	for _, course := range catalog {
		if taughtByProfessor(course, professorId, professorName) {
			matched = append(matched, course)
		}
	}

	if len(matched) == 0 {
		return ReviewCourses{Courses: catalog, Fallback: true}
	}

	result := ReviewCourses{Courses: matched}
	if len(matched) == 1 {
		result.Preselected = &matched[0].Id
	}
	return result
}

func taughtByProfessor(course Course, professorId, professorName string) bool {
	for _, entry := range course.TaughtBy {
		if entry.ProfessorId != "" && entry.ProfessorId == professorId {
			return true
		}
		if entry.Name != "" && entry.Name == professorName {
			return true
		}
	}
	return false
}
