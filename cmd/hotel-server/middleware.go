package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Uilsaun/GitResaHotel/internal/ctxstore"
	"github.com/Uilsaun/GitResaHotel/internal/response"
	"github.com/Uilsaun/GitResaHotel/internal/session"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/tomasen/realip"
)

const (
	_traceIDKey = ctxstore.Key("traceId")
	_sessionKey = ctxstore.Key("session")

	_sessionCookieName = "resahotel_session"
)

func (app *application) traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tid := genTraceID()
		ctx := ctxstore.With(r.Context(), _traceIDKey, tid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err != nil {
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		var (
			ip     = realip.FromRequest(r)
			method = r.Method
			url    = r.URL.String()
			proto  = r.Proto
			tid    = ctxstore.MustFrom[string](r.Context(), _traceIDKey)
		)

		userAttrs := slog.Group("user", "ip", ip)
		requestAttrs := slog.Group("request", "method", method, "url", url, "proto", proto, _traceIDKey.String(), tid)
		responseAttrs := slog.Group("response", "status", mw.StatusCode, "size", mw.BytesCount)

		app.serverLogger().Info("access", userAttrs, requestAttrs, responseAttrs)
	})
}

func (app *application) CORS(next http.Handler) http.Handler {
	return cors.AllowAll().Handler(next)
}

// requireAuth resolves the session cookie and stores the session in the
// request context. Missing or expired sessions get a 401.
func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(_sessionCookieName)
		if err != nil {
			app.authenticationRequired(w, r)
			return
		}

		sess, err := app.sessions.Get(cookie.Value)
		if err != nil {
			app.clearSessionCookie(w)
			app.authenticationRequired(w, r)
			return
		}

		ctx := ctxstore.With(r.Context(), _sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) sessionFromContext(r *http.Request) *session.Session {
	return ctxstore.MustFrom[*session.Session](r.Context(), _sessionKey)
}

func (app *application) setSessionCookie(w http.ResponseWriter, sess *session.Session) {
	cookie := &http.Cookie{
		Name:     _sessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	// Without remember-me the cookie ends with the browser session; the
	// server-side expiry still caps it.
	if sess.Remember {
		cookie.MaxAge = int(session.RememberTTL.Seconds())
	}

	http.SetCookie(w, cookie)
}

func (app *application) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     _sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func genTraceID() string {
	id, _ := uuid.NewRandom()
	return id.String()
}
