package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"sitedoctor/internal/doctor"
	"sitedoctor/internal/doctor/ports"
	"sitedoctor/internal/flash"
	"sitedoctor/internal/identity"
	"sitedoctor/pkg/platform/middleware/metadata"
)

const sessionCookie = "sd_session"

type contextKeyRequestID struct{}

// RequestID assigns every request a UUID, exposed in the X-Request-Id
// response header and in the context for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		ctx := context.WithValue(r.Context(), contextKeyRequestID{}, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request ID from the context, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID{}).(string)
	return id
}

// Recover converts handler panics into 500 responses instead of tearing
// down the connection.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(r.Context(), "handler panic",
						"request_id", GetRequestID(r.Context()),
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Session guarantees every request carries a flash session. The id comes
// from the session cookie when present, otherwise a fresh UUID is minted
// and set on the response.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
			sessionID = c.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(flash.WithSession(r.Context(), sessionID)))
	})
}

// Auth resolves the operator from an optional Bearer token. Requests
// without a token, or with an invalid one, proceed anonymously; the
// diagnostic layer is advisory and must never block a page.
func Auth(validator *identity.Service, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "ignoring invalid admin token",
					"request_id", GetRequestID(r.Context()),
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}

			user := &ports.User{
				ID:       claims.UserID,
				Username: claims.Username,
				Roles:    claims.Roles,
			}
			next.ServeHTTP(w, r.WithContext(identity.WithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}
	return header[len(prefix):], true
}

// requestInfo snapshots the parts of the request the diagnostic pass may
// inspect, including the parsed User-Agent.
func requestInfo(r *http.Request) doctor.RequestInfo {
	info := doctor.RequestInfo{
		Host:       r.Host,
		URI:        r.URL.RequestURI(),
		RemoteAddr: metadata.ClientIPFromRequest(r),
	}

	if raw := r.Header.Get("User-Agent"); raw != "" {
		ua := useragent.New(raw)
		name, version := ua.Browser()
		info.Browser = doctor.BrowserInfo{
			Name:    name,
			Version: version,
			Mobile:  ua.Mobile(),
			Bot:     ua.Bot(),
		}
	}
	return info
}
