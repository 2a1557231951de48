package courses

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveForReview(t *testing.T) {
	catalog := []Course{
		{Id: "crs-cs101", Code: "CS101", TaughtBy: []TaughtBy{{ProfessorId: "prof-1", Name: "Alex Rivera"}}},
		{Id: "crs-cs250", Code: "CS250", TaughtBy: []TaughtBy{{ProfessorId: "prof-1", Name: "Alex Rivera"}, {Name: "Kofi Osei"}}},
		{Id: "crs-math210", Code: "MATH210", TaughtBy: []TaughtBy{{Name: "Yumi Tanaka"}}},
	}

	t.Run("matches by professor id", func(t *testing.T) {
		result := ResolveForReview("prof-1", "Alex Rivera", catalog)
		require.False(t, result.Fallback)
		require.Len(t, result.Courses, 2)
		require.Equal(t, "crs-cs101", result.Courses[0].Id)
		require.Equal(t, "crs-cs250", result.Courses[1].Id)
		require.Nil(t, result.Preselected)
	})

	t.Run("matches by display name when the entry predates id linkage", func(t *testing.T) {
		result := ResolveForReview("prof-3", "Yumi Tanaka", catalog)
		require.False(t, result.Fallback)
		require.Len(t, result.Courses, 1)
		require.Equal(t, "crs-math210", result.Courses[0].Id)
	})

	t.Run("single match is preselected", func(t *testing.T) {
		result := ResolveForReview("prof-2", "Kofi Osei", catalog)
		require.Len(t, result.Courses, 1)
		require.NotNil(t, result.Preselected)
		require.Equal(t, "crs-cs250", *result.Preselected)
	})

	t.Run("unlinked professor falls back to the entire catalog", func(t *testing.T) {
		result := ResolveForReview("prof-unknown", "Nobody Here", catalog)
		require.True(t, result.Fallback)
		require.Equal(t, catalog, result.Courses)
		require.Nil(t, result.Preselected)
	})

	t.Run("empty professor id never matches an unlinked entry", func(t *testing.T) {
		unlinked := []Course{
			{Id: "crs-a", TaughtBy: []TaughtBy{{Name: "Someone Else"}}},
		}

		result := ResolveForReview("", "No Match", unlinked)
		require.True(t, result.Fallback)
	})
}
