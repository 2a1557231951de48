package professors

import (
	"context"
	"strings"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
	"github.com/Tofulati/hallpass-sub001/internal/services/ratings"
)

// AddProfessor adds a professor to a school's directory. Students may file
// professors missing from the catalog before reviewing them.
func AddProfessor(db *mongodb.DB, ctx context.Context, schoolId string, req NewProfessorRequest) (Professor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Professor{}, ErrEmptyName
	}

	exists, err := db.SchoolExists(ctx, schoolId)
	if err != nil {
		return Professor{}, err
	}
	if !exists {
		return Professor{}, ErrSchoolNotFound
	}

	professorDb, err := db.AddProfessor(ctx, mongodb.ProfessorDb{
		SchoolId: schoolId,
		Name:     name,
		Email:    req.Email,
	})
	if err != nil {
		return Professor{}, err
	}

	return MapDbProfessorToApiProfessor(professorDb), nil
}

func GetProfessorDb(db *mongodb.DB, ctx context.Context, id string) (mongodb.ProfessorDb, error) {
	professorDb, err := db.GetProfessorById(ctx, id)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return mongodb.ProfessorDb{}, ErrProfessorNotFound
		}
		return mongodb.ProfessorDb{}, err
	}
	return professorDb, nil
}

// GetProfessorDetail assembles the professor page. The aggregate and the
// rating order are recomputed from the current rating set on every call.
func GetProfessorDetail(db *mongodb.DB, ctx context.Context, id string) (ProfessorDetail, error) {
	professorDb, err := GetProfessorDb(db, ctx, id)
	if err != nil {
		return ProfessorDetail{}, err
	}

	allRatings, aggregate, err := ratings.GetProfessorRatings(db, ctx, id)
	if err != nil {
		return ProfessorDetail{}, err
	}

	return ProfessorDetail{
		Professor: MapDbProfessorToApiProfessor(professorDb),
		Aggregate: aggregate,
		Ratings:   allRatings,
	}, nil
}

func GetProfessorsBySchool(db *mongodb.DB, ctx context.Context, schoolId string) ([]Professor, error) {
	professorsDb, err := db.GetProfessorsBySchool(ctx, schoolId)
	if err != nil {
		return nil, err
	}

	professors := make([]Professor, 0, len(professorsDb))
	for _, p := range professorsDb {
		professors = append(professors, MapDbProfessorToApiProfessor(p))
	}

	return professors, nil
}
