package ratings

import (
	"context"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
)

// ApplyVote is the vote-toggle state machine over the two disjoint voter
// sets. It is pure and idempotent: applying the same action twice yields the
// same sets, and a voter is never a member of both sets.
func ApplyVote(sets VoteSets, voterId string, action VoteAction) (VoteSets, error) {
	if voterId == "" {
		return VoteSets{}, ErrUnknownVoter
	}

	switch action {
	case VoteActionUp:
		return VoteSets{
			Upvotes:   addToSet(sets.Upvotes, voterId),
			Downvotes: removeFromSet(sets.Downvotes, voterId),
		}, nil
	case VoteActionDown:
		return VoteSets{
			Upvotes:   removeFromSet(sets.Upvotes, voterId),
			Downvotes: addToSet(sets.Downvotes, voterId),
		}, nil
	case VoteActionRemove:
		return VoteSets{
			Upvotes:   removeFromSet(sets.Upvotes, voterId),
			Downvotes: removeFromSet(sets.Downvotes, voterId),
		}, nil
	default:
		return VoteSets{}, ErrUnknownVoteAction
	}
}

// CastVote persists a vote transition as a single atomic update on the
// rating document and returns the updated vote sets. It does not recompute
// the professor's aggregate; callers that need it re-read explicitly.
func CastVote(db *mongodb.DB, ctx context.Context, ratingId, voterId string, action VoteAction) (VoteResponse, error) {
	if voterId == "" {
		return VoteResponse{}, ErrUnknownVoter
	}

	var (
		updated mongodb.RatingDb
		err     error
	)

	switch action {
	case VoteActionUp:
		updated, err = db.ToggleRatingVote(ctx, ratingId, voterId, "upvotes", "downvotes")
	case VoteActionDown:
		updated, err = db.ToggleRatingVote(ctx, ratingId, voterId, "downvotes", "upvotes")
	case VoteActionRemove:
		updated, err = db.RemoveRatingVote(ctx, ratingId, voterId)
	default:
		return VoteResponse{}, ErrUnknownVoteAction
	}

	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return VoteResponse{}, ErrRatingNotFound
		}
		return VoteResponse{}, err
	}

	sets := VoteSets{Upvotes: updated.Upvotes, Downvotes: updated.Downvotes}
	return VoteResponse{
		RatingId:  updated.Id,
		Upvotes:   sets.Upvotes,
		Downvotes: sets.Downvotes,
		Score:     sets.Score(),
	}, nil
}

func addToSet(set []string, value string) []string {
	for _, v := range set {
		if v == value {
			return set
		}
	}
	return append(copySet(set), value)
}

func removeFromSet(set []string, value string) []string {
	out := make([]string, 0, len(set))
	for _, v := range set {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

func copySet(set []string) []string {
	out := make([]string, 0, len(set)+1)
	return append(out, set...)
}
