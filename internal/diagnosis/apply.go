package diagnosis

import (
	"slices"
	"strings"

	"github.com/abhisek/errormind/internal/store"
)

// Apply folds a diagnosis into a user profile and returns the updated
// copy. Stat counters are incremented by case-insensitive substring
// match on the error type. A successful attempt records the task as
// solved and clears any earlier failure for it; a failed attempt
// records the task as failed.
func Apply(u store.User, taskID string, r *Result) store.User {
	eType := strings.ToLower(r.ErrorType)
	if strings.Contains(eType, "logical") {
		u.Stats.Logical++
	}
	if strings.Contains(eType, "computational") {
		u.Stats.Computational++
	}
	if strings.Contains(eType, "careless") {
		u.Stats.Carelessness++
	}
	if strings.Contains(eType, "strategy") {
		u.Stats.Strategy++
	}
	if strings.Contains(eType, "attention") {
		u.Stats.Attention++
	}

	u.SolvedTaskIDs = slices.Clone(u.SolvedTaskIDs)
	u.FailedTaskIDs = slices.Clone(u.FailedTaskIDs)

	if r.IsSuccess() {
		if !slices.Contains(u.SolvedTaskIDs, taskID) {
			u.SolvedTaskIDs = append(u.SolvedTaskIDs, taskID)
		}
		u.FailedTaskIDs = slices.DeleteFunc(u.FailedTaskIDs, func(id string) bool {
			return id == taskID
		})
	} else {
		if !slices.Contains(u.FailedTaskIDs, taskID) {
			u.FailedTaskIDs = append(u.FailedTaskIDs, taskID)
		}
	}

	return u
}
