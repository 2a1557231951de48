package onboarding

import (
	"time"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

// BuildPlan enumerates the write operations of one onboarding completion and
// packs them, in enumeration order, into groups no larger than limit:
// first the merge onto the user's own record, then one membership add per
// course, then one membership add per organization. Every op is a merge or
// set-union, so replaying the same plan is a no-op.
func BuildPlan(userId string, selection Selection, limit int) (Plan, error) {
	if selection.SchoolId == "" {
		return nil, ErrNoSchoolSelected
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	courseIds := dedupe(selection.CourseIds)
	orgIds := dedupe(selection.OrgIds)

	ops := make([]mongodb.WriteOp, 0, 1+len(courseIds)+len(orgIds))

	userOp := mongodb.MergeSetOp(mongodb.UsersCollection, userId, bson.M{
		"schoolId":  selection.SchoolId,
		"updatedAt": time.Now(),
	})
	if len(courseIds) > 0 {
		userOp = userOp.WithSetUnion("courses", courseIds)
	}
	if len(orgIds) > 0 {
		userOp = userOp.WithSetUnion("orgs", orgIds)
	}
	ops = append(ops, userOp)

	for _, courseId := range courseIds {
		ops = append(ops, mongodb.SetUnionOp(mongodb.CoursesCollection, courseId, "members", []string{userId}))
	}
	for _, orgId := range orgIds {
		ops = append(ops, mongodb.SetUnionOp(mongodb.OrganizationsCollection, orgId, "members", []string{userId}))
	}

	plan := make(Plan, 0, (len(ops)+limit-1)/limit)
	for start := 0; start < len(ops); start += limit {
		end := start + limit
		if end > len(ops) {
			end = len(ops)
		}
		plan = append(plan, WriteGroup(ops[start:end]))
	}

	return plan, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
