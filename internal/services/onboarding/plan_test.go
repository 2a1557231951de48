package onboarding

import (
	"fmt"
	"testing"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan(t *testing.T) {
	selection := func(k, m int) Selection {
		s := Selection{SchoolId: "sch-state"}
		for i := 0; i < k; i++ {
			s.CourseIds = append(s.CourseIds, fmt.Sprintf("crs-%d", i))
		}
		for i := 0; i < m; i++ {
			s.OrgIds = append(s.OrgIds, fmt.Sprintf("org-%d", i))
		}
		return s
	}

	t.Run("group count is ceil((1+k+m)/limit)", func(t *testing.T) {
		cases := []struct {
			k, m, limit, groups int
		}{
			{0, 0, 500, 1},
			{3, 2, 500, 1},
			{3, 2, 6, 1},
			{3, 2, 5, 2},
			{9, 0, 5, 2},
			{10, 0, 5, 3},
			{4, 4, 3, 3},
		}

		for _, tc := range cases {
			plan, err := BuildPlan("user-1", selection(tc.k, tc.m), tc.limit)
			require.NoError(t, err)
			require.Len(t, plan, tc.groups, "k=%d m=%d limit=%d", tc.k, tc.m, tc.limit)
			require.Equal(t, 1+tc.k+tc.m, plan.Ops())

			for _, group := range plan {
				require.LessOrEqual(t, len(group), tc.limit)
			}
		}
	})

	t.Run("enumeration order: user merge, then courses, then orgs", func(t *testing.T) {
		plan, err := BuildPlan("user-1", selection(2, 2), 2)
		require.NoError(t, err)
		require.Len(t, plan, 3)

		var flat []mongodb.WriteOp
		for _, group := range plan {
			flat = append(flat, group...)
		}

		require.Equal(t, mongodb.UsersCollection, flat[0].Collection)
		require.Equal(t, "user-1", flat[0].Id)
		require.Equal(t, mongodb.CoursesCollection, flat[1].Collection)
		require.Equal(t, mongodb.CoursesCollection, flat[2].Collection)
		require.Equal(t, mongodb.OrganizationsCollection, flat[3].Collection)
		require.Equal(t, mongodb.OrganizationsCollection, flat[4].Collection)
	})

	t.Run("duplicate and empty ids are dropped before planning", func(t *testing.T) {
		sel := Selection{
			SchoolId:  "sch-state",
			CourseIds: []string{"crs-a", "crs-a", "", "crs-b"},
			OrgIds:    []string{"org-a", "org-a"},
		}

		plan, err := BuildPlan("user-1", sel, 500)
		require.NoError(t, err)
		require.Equal(t, 1+2+1, plan.Ops())
	})

	t.Run("missing school is a validation failure", func(t *testing.T) {
		_, err := BuildPlan("user-1", Selection{}, 500)
		require.ErrorIs(t, err, ErrNoSchoolSelected)
	})

	t.Run("non-positive limit is rejected", func(t *testing.T) {
		_, err := BuildPlan("user-1", selection(1, 1), 0)
		require.ErrorIs(t, err, ErrInvalidLimit)
	})
}
