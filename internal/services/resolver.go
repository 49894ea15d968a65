package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

// UnassignedMention is the sentinel the extraction prompt asks the model to
// use when a task has no owner.
const UnassignedMention = "unassigned"

// ResolveAssignee maps a free-text mention to a user in the organization
// directory. Matching is exact after trimming and lowercasing, against name
// or email. No fuzzy matching: a near-miss assigning work to the wrong
// person is worse than leaving the task unassigned. When two users share a
// normalized name, the first in directory order wins.
func ResolveAssignee(mention string, directory []repository.OrgUser) (uuid.UUID, bool) {
	normalized := strings.ToLower(strings.TrimSpace(mention))
	if normalized == "" || normalized == UnassignedMention {
		return uuid.Nil, false
	}

	for _, user := range directory {
		if strings.ToLower(strings.TrimSpace(user.Name)) == normalized ||
			strings.ToLower(strings.TrimSpace(user.Email)) == normalized {
			return user.ID, true
		}
	}

	return uuid.Nil, false
}
