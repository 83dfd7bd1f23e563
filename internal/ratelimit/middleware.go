package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// MetadataKey is the huma operation metadata key holding a route's Class.
const MetadataKey = "rateLimitClass"

// RejectedBody is the 429 response body.
type RejectedBody struct {
	Error             string    `json:"error"`
	RetryAfterSeconds int       `json:"retryAfterSeconds"`
	Limit             int       `json:"limit"`
	WindowStart       time.Time `json:"windowStart"`
	ResetAt           time.Time `json:"resetAt"`
}

// Middleware limits operations whose metadata names a Class. Operations
// without one pass through untouched.
func Middleware(api huma.API, limiter *Limiter) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		op := ctx.Operation()
		class, ok := op.Metadata[MetadataKey].(Class)
		if !ok {
			next(ctx)
			return
		}

		identity := Identity(
			ctx.Header("Authorization"),
			ctx.Header("X-Forwarded-For"),
			ctx.Header("X-Real-IP"),
			ctx.RemoteAddr(),
		)
		d := limiter.Allow(identity, Route{Path: op.Path, Class: class})

		ctx.SetHeader("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		ctx.SetHeader("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		ctx.SetHeader("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

		if d.Allowed {
			next(ctx)
			return
		}

		ctx.SetHeader("Retry-After", strconv.Itoa(d.RetryAfterSeconds))
		ctx.SetHeader("Content-Type", "application/json")
		ctx.SetStatus(http.StatusTooManyRequests)
		_ = api.Marshal(ctx.BodyWriter(), "application/json", RejectedBody{
			Error:             "Too many requests. Please try again later.",
			RetryAfterSeconds: d.RetryAfterSeconds,
			Limit:             d.Limit,
			WindowStart:       d.WindowStart,
			ResetAt:           d.ResetAt,
		})
	}
}

// Classify tags op with class for Middleware.
func Classify(op *huma.Operation, class Class) {
	if op.Metadata == nil {
		op.Metadata = map[string]any{}
	}
	op.Metadata[MetadataKey] = class
}
