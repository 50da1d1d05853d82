package middleware

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Recover converts a handler panic into a generic 500 so no request can
// crash the process. The panic detail is logged, never returned.
func Recover(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", string(ctx.Path())))
					ctx.Response.Reset()
					ctx.Response.Header.SetContentType("application/json")
					ctx.SetStatusCode(fasthttp.StatusInternalServerError)
					ctx.SetBodyString(`{"error":"internal server error"}`)
				}
			}()
			next(ctx)
		}
	}
}
