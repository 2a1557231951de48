package professors

import "github.com/Tofulati/hallpass-sub001/internal/mongodb"

func MapDbProfessorToApiProfessor(dbProfessor mongodb.ProfessorDb) Professor {
	return Professor{
		Id:        dbProfessor.Id,
		SchoolId:  dbProfessor.SchoolId,
		Name:      dbProfessor.Name,
		Email:     dbProfessor.Email,
		ImageURL:  dbProfessor.ImageURL,
		CreatedAt: dbProfessor.CreatedAt,
	}
}
