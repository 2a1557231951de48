package onboarding

import "github.com/Tofulati/hallpass-sub001/internal/mongodb"

// Selection is a user's onboarding choices. It is input only, never stored
// as its own entity.
type Selection struct {
	SchoolId  string   `json:"schoolId"`
	CourseIds []string `json:"courseIds"`
	OrgIds    []string `json:"orgIds"`
}

// WriteGroup is one bounded unit of the plan: at most the store's per-commit
// operation ceiling, committed atomically per document.
type WriteGroup []mongodb.WriteOp

// Plan is the ordered sequence of write groups for one onboarding
// completion. It lives only for the duration of the call.
type Plan []WriteGroup

// Ops counts the planned mutations across all groups.
func (p Plan) Ops() int {
	total := 0
	for _, group := range p {
		total += len(group)
	}
	return total
}

type CommitResponse struct {
	SchoolId string `json:"schoolId"`
	Courses  int    `json:"courses"`
	Orgs     int    `json:"orgs"`
}
