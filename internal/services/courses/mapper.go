package courses

import "github.com/Tofulati/hallpass-sub001/internal/mongodb"

func MapDbCourseToApiCourse(dbCourse mongodb.CourseDb) Course {
	taughtBy := make([]TaughtBy, 0, len(dbCourse.TaughtBy))
	for _, entry := range dbCourse.TaughtBy {
		taughtBy = append(taughtBy, TaughtBy{
			ProfessorId: entry.ProfessorId,
			Name:        entry.Name,
		})
	}

	return Course{
		Id:       dbCourse.Id,
		SchoolId: dbCourse.SchoolId,
		Code:     dbCourse.Code,
		Name:     dbCourse.Name,
		TaughtBy: taughtBy,
	}
}
