package services

import (
	"agora/internal/models"
)

// CanModerateThread gates pin/unpin/lock/unlock.
func CanModerateThread(u *models.User) bool {
	return u.IsModerator()
}

// CanDeleteThread allows the author and anyone at moderator level or above.
func CanDeleteThread(u *models.User, t *models.Thread) bool {
	return t.AuthorID == u.ID || u.IsModerator()
}

// CanDeleteComment is strictly owner-only; moderators may delete whole
// threads but not individual comments.
func CanDeleteComment(u *models.User, c *models.Comment) bool {
	return c.AuthorID == u.ID
}

// ValidateRoleChange checks an admin-panel role update. Admins may not demote
// themselves away from admin; setting themselves to admin is a no-op success.
func ValidateRoleChange(actor *models.User, targetUserID uint, newRole string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if !models.ValidRole(newRole) {
		return ErrInvalidRole
	}
	if targetUserID == actor.ID && newRole != models.RoleAdmin {
		return ErrSelfDemotion
	}
	return nil
}
