package middleware

import "context"

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// GetUserIDFromCtx retrieves the authenticated user ID from the context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
