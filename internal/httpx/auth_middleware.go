package httpx

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the external identity service's bearer tokens. This
// service only verifies them; issuing and revoking tokens happens
// elsewhere.
type Claims struct {
	Sub string `json:"sub"` // user id
	jwt.RegisteredClaims
}

func parseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// AuthMiddleware rejects requests without a valid bearer token and puts
// the caller's user id on the request context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token", nil)
				return
			}

			claims, err := parseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token", nil)
				return
			}

			ctx := ContextWithUserID(r.Context(), claims.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
