package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Tofulati/hallpass-sub001/internal/services/professors"
	"github.com/Tofulati/hallpass-sub001/internal/services/users"
	"github.com/stretchr/testify/require"
)

func TestCreateProfessor(t *testing.T) {
	resetDB(t)
	seedCampus(t)

	_, token := addUser(t, users.NewUserRequest{
		Username: "filer",
		Name:     "Filer",
		Email:    "filer@state.edu",
		Password: "testpass123",
	})

	t.Run("Filing a missing professor adds them to the directory", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, "/schools/sch-state/professors", token, professors.NewProfessorRequest{
			Name: "Dana Whitfield",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created professors.Professor
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		require.NotEmpty(t, created.Id)
		require.Equal(t, "sch-state", created.SchoolId)
		require.Equal(t, "Dana Whitfield", created.Name)

		respList := doRequest(t, http.MethodGet, "/schools/sch-state/professors", token, nil)
		defer respList.Body.Close()
		require.Equal(t, http.StatusOK, respList.StatusCode)

		var listing professors.AllProfessorsResponse
		require.NoError(t, json.NewDecoder(respList.Body).Decode(&listing))

		var names []string
		for _, p := range listing.Professors {
			names = append(names, p.Name)
		}
		require.Contains(t, names, "Dana Whitfield")
	})

	t.Run("Blank name returns 400", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, "/schools/sch-state/professors", token, professors.NewProfessorRequest{
			Name: "   ",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown school returns 404", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, "/schools/sch-ghost/professors", token, professors.NewProfessorRequest{
			Name: "Dana Whitfield",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Unauthenticated request returns 401", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, "/schools/sch-state/professors", "", professors.NewProfessorRequest{
			Name: "Dana Whitfield",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
