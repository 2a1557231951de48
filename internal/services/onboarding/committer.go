package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
	"github.com/Tofulati/hallpass-sub001/internal/services/users"
)

// Commit applies a user's onboarding selection: the school id and the
// selected course/org sets are merged onto the user record, and the user id
// is added to the membership set of every selected course and organization.
//
// The selection is validated up front: the school must exist and match the
// user's campus email domain, and every course and organization must exist
// in that school. Validation failures never reach the store.
//
// Groups are committed strictly in plan order, one at a time. A failure
// mid-sequence leaves earlier groups committed; there is no rollback. The
// whole call is reported as failed and may be safely re-issued because every
// planned write is a merge or set-union.
func Commit(db *mongodb.DB, ctx context.Context, user mongodb.UserDb, selection Selection) (CommitResponse, error) {
	if selection.SchoolId == "" {
		return CommitResponse{}, ErrNoSchoolSelected
	}

	school, err := db.GetSchoolById(ctx, selection.SchoolId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return CommitResponse{}, ErrSchoolNotFound
		}
		return CommitResponse{}, err
	}

	if !strings.EqualFold(users.EmailDomain(user.Email), school.Domain) {
		return CommitResponse{}, ErrEmailDomainMismatch
	}

	if err := validateSelection(db, ctx, school.Id, selection); err != nil {
		return CommitResponse{}, err
	}

	plan, err := BuildPlan(user.Id, selection, mongodb.BatchLimit())
	if err != nil {
		return CommitResponse{}, err
	}

	for i, group := range plan {
		if err := db.CommitBatch(ctx, group); err != nil {
			return CommitResponse{}, fmt.Errorf("%w: group %d/%d: %v", ErrCommitFailed, i+1, len(plan), err)
		}
	}

	return CommitResponse{
		SchoolId: selection.SchoolId,
		Courses:  len(dedupe(selection.CourseIds)),
		Orgs:     len(dedupe(selection.OrgIds)),
	}, nil
}

// validateSelection checks that every selected course and organization
// exists and belongs to the selected school.
func validateSelection(db *mongodb.DB, ctx context.Context, schoolId string, selection Selection) error {
	for _, courseId := range dedupe(selection.CourseIds) {
		course, err := db.GetCourseById(ctx, courseId)
		if err != nil {
			if errors.Is(err, mongodb.ErrRecordNotFound) {
				return ErrUnknownCourse
			}
			return err
		}
		if course.SchoolId != schoolId {
			return ErrUnknownCourse
		}
	}

	for _, orgId := range dedupe(selection.OrgIds) {
		org, err := db.GetOrganizationById(ctx, orgId)
		if err != nil {
			if errors.Is(err, mongodb.ErrRecordNotFound) {
				return ErrUnknownOrg
			}
			return err
		}
		if org.SchoolId != schoolId {
			return ErrUnknownOrg
		}
	}

	return nil
}
