package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/api/v1/status", app.handleStatus)

	mux.Post("/api/v1/auth/register", app.handleRegister)
	mux.Post("/api/v1/auth/login", app.handleLogin)
	mux.Post("/api/v1/auth/logout", app.handleLogout)

	mux.Get("/api/v1/chambres/disponibles", app.handleChambresDisponibles)

	mux.Group(func(mux chi.Router) {
		mux.Use(app.requireAuth)

		mux.Get("/api/v1/profile", app.handleProfile)
		mux.Post("/api/v1/profile", app.handleUpdateProfile)
		mux.Post("/api/v1/profile/password", app.handleChangePassword)
	})

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
