package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/internal/utils"
)

// withAuth enforces bearer JWT authentication. Token issuance belongs to
// an external identity service; this middleware only verifies the shared
// HMAC signature, the issuer and the expiry, then stores the owner id in
// the request context under [utils.UserIDCtxKey].
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := extractBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.withAuth").Msg("rejected request without valid bearer token")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		userID, err := utils.ValidateAndParseJWTToken(token, h.auth.TokenSignKey, h.auth.TokenIssuer)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.withAuth").Msg("token validation failed")
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
