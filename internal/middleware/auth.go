package middleware

import (
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/pkg/token"
)

// UserIDKey is the request-scoped key under which the gate stores the
// verified user ID. Handlers must never accept an identity from anywhere
// else (headers included: clients can forge those).
const UserIDKey = "auth_user_id"

// Auth is the access gate: it requires a `Bearer <token>` Authorization
// header, verifies signature and expiry, and attaches the embedded user ID
// to the request. A missing or malformed header is reported separately
// from a failed verification so the two show up distinctly in diagnostics,
// but both surface as 401.
func Auth(verifier *token.Issuer, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			raw, ok := bearerToken(ctx)
			if !ok {
				unauthorized(ctx, domain.ErrAuthRequired.Message)
				return
			}

			userID, err := verifier.Verify(raw)
			if err != nil {
				logger.Warn("token verification failed",
					zap.String("path", string(ctx.Path())), zap.Error(err))
				unauthorized(ctx, domain.ErrInvalidToken.Message)
				return
			}

			ctx.SetUserValue(UserIDKey, userID)
			next(ctx)
		}
	}
}

// UserID returns the verified identity attached by Auth, or "".
func UserID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(UserIDKey).(string)
	return id
}

func bearerToken(ctx *fasthttp.RequestCtx) (string, bool) {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return "", false
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}

func unauthorized(ctx *fasthttp.RequestCtx, message string) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	ctx.SetBodyString(`{"error":"` + message + `"}`)
}
