package schools

import (
	"context"
	"errors"
	"net/http"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
)

type School struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

type AllSchoolsResponse struct {
	Schools []School `json:"schools"`
}

var ErrSchoolNotFound = errors.New("school not found")

var ErrorMap = map[error]int{
	ErrSchoolNotFound: http.StatusNotFound,
}

func GetAllSchools(db *mongodb.DB, ctx context.Context) ([]School, error) {
	schoolsDb, err := db.GetAllSchools(ctx)
	if err != nil {
		return nil, err
	}

	allSchools := make([]School, 0, len(schoolsDb))
	for _, s := range schoolsDb {
		allSchools = append(allSchools, School{Id: s.Id, Name: s.Name, Domain: s.Domain})
	}

	return allSchools, nil
}

func GetSchoolById(db *mongodb.DB, ctx context.Context, id string) (School, error) {
	schoolDb, err := db.GetSchoolById(ctx, id)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return School{}, ErrSchoolNotFound
		}
		return School{}, err
	}

	return School{Id: schoolDb.Id, Name: schoolDb.Name, Domain: schoolDb.Domain}, nil
}
