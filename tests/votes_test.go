package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Tofulati/hallpass-sub001/internal/services/ratings"
	"github.com/Tofulati/hallpass-sub001/internal/services/users"
	"github.com/stretchr/testify/require"
)

func TestCastVote(t *testing.T) {
	resetDB(t)
	seedCampus(t)

	author, tokenAuthor := addUser(t, users.NewUserRequest{
		Username: "author",
		Name:     "Author",
		Email:    "author@state.edu",
		Password: "testpass123",
	})
	voter, tokenVoter := addUser(t, users.NewUserRequest{
		Username: "voter",
		Name:     "Voter",
		Email:    "voter@state.edu",
		Password: "testpass123",
	})

	respCreate := doRequest(t, http.MethodPost, "/professors/prof-rivera/ratings", tokenAuthor, ratings.NewRatingRequest{
		CourseId:          "crs-cs101",
		Difficulty:        intPtr(3),
		Enjoyment:         intPtr(4),
		Understandability: intPtr(4),
		Retake:            boolPtr(true),
		Body:              "Solid course.",
	})
	defer respCreate.Body.Close()
	require.Equal(t, http.StatusCreated, respCreate.StatusCode)

	var created ratings.Rating
	require.NoError(t, json.NewDecoder(respCreate.Body).Decode(&created))

	castVote := func(t *testing.T, token string, action ratings.VoteAction) ratings.VoteResponse {
		t.Helper()

		resp := doRequest(t, http.MethodPost, "/ratings/"+created.Id+"/vote", token, ratings.VoteRequest{Action: action})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var voteResp ratings.VoteResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&voteResp))
		return voteResp
	}

	t.Run("Upvote adds the voter and derives the score", func(t *testing.T) {
		voteResp := castVote(t, tokenVoter, ratings.VoteActionUp)
		require.Equal(t, []string{voter.Id}, voteResp.Upvotes)
		require.Empty(t, voteResp.Downvotes)
		require.Equal(t, 1, voteResp.Score)
	})

	t.Run("Upvoting twice is idempotent", func(t *testing.T) {
		voteResp := castVote(t, tokenVoter, ratings.VoteActionUp)
		require.Equal(t, []string{voter.Id}, voteResp.Upvotes)
		require.Equal(t, 1, voteResp.Score)
	})

	t.Run("Switching to downvote moves the voter atomically", func(t *testing.T) {
		voteResp := castVote(t, tokenVoter, ratings.VoteActionDown)
		require.Empty(t, voteResp.Upvotes)
		require.Equal(t, []string{voter.Id}, voteResp.Downvotes)
		require.Equal(t, -1, voteResp.Score)

		ratingDb := getRatingDb(t, created.Id)
		require.NotContains(t, ratingDb.Upvotes, voter.Id)
		require.Contains(t, ratingDb.Downvotes, voter.Id)
	})

	t.Run("Two voters tally independently", func(t *testing.T) {
		voteResp := castVote(t, tokenAuthor, ratings.VoteActionUp)
		require.Equal(t, []string{author.Id}, voteResp.Upvotes)
		require.Equal(t, []string{voter.Id}, voteResp.Downvotes)
		require.Equal(t, 0, voteResp.Score)
	})

	t.Run("Remove clears the voter from both sets", func(t *testing.T) {
		voteResp := castVote(t, tokenVoter, ratings.VoteActionRemove)
		require.NotContains(t, voteResp.Downvotes, voter.Id)
		require.Equal(t, 1, voteResp.Score)
	})

	t.Run("Unknown action returns 400", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, "/ratings/"+created.Id+"/vote", tokenVoter, ratings.VoteRequest{Action: "sideways"})
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown rating returns 404", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, "/ratings/nope/vote", tokenVoter, ratings.VoteRequest{Action: ratings.VoteActionUp})
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Unauthenticated vote returns 401", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, "/ratings/"+created.Id+"/vote", "", ratings.VoteRequest{Action: ratings.VoteActionUp})
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestDisplayOrdering(t *testing.T) {
	resetDB(t)
	seedCampus(t)

	_, tokenA := addUser(t, users.NewUserRequest{
		Username: "ordera",
		Name:     "Order A",
		Email:    "ordera@state.edu",
		Password: "testpass123",
	})
	_, tokenB := addUser(t, users.NewUserRequest{
		Username: "orderb",
		Name:     "Order B",
		Email:    "orderb@state.edu",
		Password: "testpass123",
	})

	addRating := func(t *testing.T, token, courseId string) string {
		t.Helper()

		resp := doRequest(t, http.MethodPost, "/professors/prof-rivera/ratings", token, ratings.NewRatingRequest{
			CourseId:          courseId,
			Difficulty:        intPtr(3),
			Enjoyment:         intPtr(3),
			Understandability: intPtr(3),
			Retake:            boolPtr(false),
			Body:              "Fine.",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created ratings.Rating
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		return created.Id
	}

	firstId := addRating(t, tokenA, "crs-cs101")
	secondId := addRating(t, tokenB, "crs-cs250")

	// Upvote the first review so it outranks the newer one
	respVote := doRequest(t, http.MethodPost, "/ratings/"+firstId+"/vote", tokenB, ratings.VoteRequest{Action: ratings.VoteActionUp})
	respVote.Body.Close()
	require.Equal(t, http.StatusOK, respVote.StatusCode)

	t.Run("Higher score outranks recency", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, "/professors/prof-rivera/ratings", tokenA, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Ratings []ratings.Rating `json:"ratings"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Ratings, 2)
		require.Equal(t, firstId, body.Ratings[0].Id)
		require.Equal(t, secondId, body.Ratings[1].Id)
	})

	t.Run("Removing the vote re-sorts by recency", func(t *testing.T) {
		respRemove := doRequest(t, http.MethodPost, "/ratings/"+firstId+"/vote", tokenB, ratings.VoteRequest{Action: ratings.VoteActionRemove})
		respRemove.Body.Close()
		require.Equal(t, http.StatusOK, respRemove.StatusCode)

		resp := doRequest(t, http.MethodGet, "/professors/prof-rivera/ratings", tokenA, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Ratings []ratings.Rating `json:"ratings"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Ratings, 2)
		require.Equal(t, secondId, body.Ratings[0].Id)
	})
}
