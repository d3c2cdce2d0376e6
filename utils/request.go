package utils

import (
	"net/http"

	"bamboo/globals"
)

// GetUserIDFromRequest returns the caller's user id placed in the request
// context by the auth middleware, or "" when unauthenticated.
func GetUserIDFromRequest(r *http.Request) string {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		return ""
	}
	return userID
}

// GetRoleFromRequest returns the caller's role from the request context.
func GetRoleFromRequest(r *http.Request) string {
	role, ok := r.Context().Value(globals.RoleKey).(string)
	if !ok {
		return ""
	}
	return role
}
