package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskforge/backend/api/handler"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Profile *apiHandler.ProfileHandler
	Task    *apiHandler.TaskHandler
	Health  *apiHandler.HealthHandler
}

// Middleware wraps a handler; Protect is the access gate applied to every
// route that requires a resolved identity.
type Middleware struct {
	Protect func(fasthttp.RequestHandler) fasthttp.RequestHandler
	Recover func(fasthttp.RequestHandler) fasthttp.RequestHandler
	CORS    func(fasthttp.RequestHandler) fasthttp.RequestHandler
}

func New(handlers Handlers, mw Middleware) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Public routes
	r.POST("/api/v1/users", handlers.Auth.Register)
	r.POST("/api/v1/auth", handlers.Auth.Login)

	// Protected routes
	r.GET("/api/v1/users/profile", mw.Protect(handlers.Profile.Get))
	r.PUT("/api/v1/users/profile", mw.Protect(handlers.Profile.Update))

	r.POST("/api/v1/tasks", mw.Protect(handlers.Task.Create))
	r.GET("/api/v1/tasks", mw.Protect(handlers.Task.List))
	r.GET("/api/v1/tasks/{id}", mw.Protect(handlers.Task.Get))
	r.PUT("/api/v1/tasks/{id}", mw.Protect(handlers.Task.Update))
	r.DELETE("/api/v1/tasks/{id}", mw.Protect(handlers.Task.Delete))

	return r
}

// Handler composes the router with the outermost middleware chain.
func Handler(r *router.Router, mw Middleware) fasthttp.RequestHandler {
	h := r.Handler
	if mw.CORS != nil {
		h = mw.CORS(h)
	}
	if mw.Recover != nil {
		h = mw.Recover(h)
	}
	return h
}
