package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/pavankalyan767/wundrsight-assignment/internal/auth"
	"github.com/pavankalyan767/wundrsight-assignment/internal/model"
)

type ctxKey string

const (
	UserIDKey ctxKey = "uid"
	RoleKey   ctxKey = "role"
)

func UserID(ctx context.Context) string {
	v, _ := ctx.Value(UserIDKey).(string)
	return v
}

// RequireRole authenticates the bearer token and authorizes the role before
// the wrapped handler runs. Missing or malformed credentials are 401, a
// valid token with the wrong role is 403; business logic never executes on
// either path.
func RequireRole(secret string, role model.Role, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			deny(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			deny(w, http.StatusUnauthorized, "invalid token")
			return
		}

		switch claims.Role {
		case role:
		case model.RolePatient, model.RoleAdmin:
			deny(w, http.StatusForbidden, "insufficient role")
			return
		default:
			deny(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		next(w, r.WithContext(ctx), ps)
	}
}

func deny(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
