package onboarding

import (
	"context"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
)

// Organization is a club a user can join during onboarding.
type Organization struct {
	Id       string `json:"id"`
	SchoolId string `json:"schoolId"`
	Name     string `json:"name"`
	Members  int    `json:"members"`
}

func GetSchoolOrganizations(db *mongodb.DB, ctx context.Context, schoolId string) ([]Organization, error) {
	orgsDb, err := db.GetOrganizationsBySchool(ctx, schoolId)
	if err != nil {
		return nil, err
	}

	orgs := make([]Organization, 0, len(orgsDb))
	for _, o := range orgsDb {
		orgs = append(orgs, Organization{
			Id:       o.Id,
			SchoolId: o.SchoolId,
			Name:     o.Name,
			Members:  len(o.Members),
		})
	}

	return orgs, nil
}
