package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/utils"
)

// Authenticate resolves the bearer token into a session and stores it in the
// request context for controllers and usecases.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.AuthBearerPrefix)
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.ParseSessionData(r.Context(), sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles rejects authenticated sessions whose role is not in the allow
// list. It must be mounted after Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := utils.GetSessionFromContext(r.Context())
			if session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}

			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
		})
	}
}
