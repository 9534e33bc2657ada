package types

import "context"

type ContextKey string

const (
	CtxRequestID  ContextKey = "ctx_request_id"
	CtxCallerRole ContextKey = "ctx_caller_role"
)

const (
	HeaderRequestID = "X-Request-ID"
)

// CallerRole identifies the capability of the caller as resolved by the
// auth middleware. Mutating admin routes require RoleAdmin.
type CallerRole string

const (
	RoleAdmin  CallerRole = "admin"
	RolePublic CallerRole = "public"
)

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}

func GetCallerRole(ctx context.Context) CallerRole {
	if role, ok := ctx.Value(CtxCallerRole).(CallerRole); ok {
		return role
	}
	return RolePublic
}
