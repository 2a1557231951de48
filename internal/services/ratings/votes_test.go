package ratings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyVote(t *testing.T) {
	t.Run("upvote adds to upvotes and pulls from downvotes", func(t *testing.T) {
		sets := VoteSets{Downvotes: []string{"u1"}}

		updated, err := ApplyVote(sets, "u1", VoteActionUp)
		require.NoError(t, err)
		require.Equal(t, []string{"u1"}, updated.Upvotes)
		require.Empty(t, updated.Downvotes)
	})

	t.Run("upvote is idempotent", func(t *testing.T) {
		sets := VoteSets{}

		once, err := ApplyVote(sets, "u1", VoteActionUp)
		require.NoError(t, err)
		twice, err := ApplyVote(once, "u1", VoteActionUp)
		require.NoError(t, err)

		require.Equal(t, once, twice)
	})

	t.Run("switching from up to down never double-counts", func(t *testing.T) {
		sets := VoteSets{}

		sets, err := ApplyVote(sets, "u1", VoteActionUp)
		require.NoError(t, err)
		sets, err = ApplyVote(sets, "u1", VoteActionDown)
		require.NoError(t, err)

		require.Empty(t, sets.Upvotes)
		require.Equal(t, []string{"u1"}, sets.Downvotes)
	})

	t.Run("remove clears the voter from both sets", func(t *testing.T) {
		sets := VoteSets{Upvotes: []string{"u1", "u2"}}

		sets, err := ApplyVote(sets, "u1", VoteActionRemove)
		require.NoError(t, err)
		require.Equal(t, []string{"u2"}, sets.Upvotes)
		require.Empty(t, sets.Downvotes)

		// no-op when in neither set
		again, err := ApplyVote(sets, "u1", VoteActionRemove)
		require.NoError(t, err)
		require.Equal(t, sets, again)
	})

	t.Run("a voter is never in both sets", func(t *testing.T) {
		sets := VoteSets{}
		actions := []VoteAction{
			VoteActionUp, VoteActionDown, VoteActionUp,
			VoteActionRemove, VoteActionDown, VoteActionDown,
		}

		for _, action := range actions {
			var err error
			sets, err = ApplyVote(sets, "u1", action)
			require.NoError(t, err)

			inUp := contains(sets.Upvotes, "u1")
			inDown := contains(sets.Downvotes, "u1")
			require.False(t, inUp && inDown)
		}
	})

	t.Run("score is always upvotes minus downvotes", func(t *testing.T) {
		sets := VoteSets{}
		var err error

		for _, voter := range []string{"u1", "u2", "u3"} {
			sets, err = ApplyVote(sets, voter, VoteActionUp)
			require.NoError(t, err)
		}
		sets, err = ApplyVote(sets, "u4", VoteActionDown)
		require.NoError(t, err)

		require.Equal(t, 2, sets.Score())

		sets, err = ApplyVote(sets, "u1", VoteActionDown)
		require.NoError(t, err)
		require.Equal(t, 0, sets.Score())
	})

	t.Run("unknown voter is rejected", func(t *testing.T) {
		_, err := ApplyVote(VoteSets{}, "", VoteActionUp)
		require.ErrorIs(t, err, ErrUnknownVoter)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		_, err := ApplyVote(VoteSets{}, "u1", VoteAction("sideways"))
		require.ErrorIs(t, err, ErrUnknownVoteAction)
	})
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
