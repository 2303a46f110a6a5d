// Package authz holds the role check shared by route guards and dashboard scoping.
package authz

import (
	"slices"

	"github.com/farellandr/eventhub/internal/models"
)

// CanAccess reports whether user may use something restricted to roles.
// With no roles any authenticated user is allowed.
func CanAccess(user *models.User, roles ...models.Role) bool {
	if user == nil {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	return slices.Contains(roles, user.Role)
}

// Owns reports whether user organizes event, or may manage every event.
func Owns(user *models.User, event models.Event) bool {
	if CanAccess(user, models.RoleAdmin) {
		return true
	}
	return user != nil && event.Organizer.ID == user.ID
}
