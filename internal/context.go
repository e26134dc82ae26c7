package internal

import (
	"context"
	"time"
)

type ctxKey string

const (
	ContextUserIDKey   ctxKey = "userID"
	ContextUserTypeKey ctxKey = "userType"
)

// User types carried in auth tokens. The ledger itself trusts ids handed to
// it; these only scope the administrative endpoints.
const (
	UserTypeDonor = "donor"
	UserTypeNGO   = "ngo"
)

func UserIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if userID, ok := ctx.Value(ContextUserIDKey).(int64); ok {
		return userID
	}
	return 0
}

func UserTypeFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if userType, ok := ctx.Value(ContextUserTypeKey).(string); ok {
		return userType
	}
	return ""
}

func ContextWithUser(ctx context.Context, userID int64, userType string) context.Context {
	ctx = context.WithValue(ctx, ContextUserIDKey, userID)
	return context.WithValue(ctx, ContextUserTypeKey, userType)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
