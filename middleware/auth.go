package middleware

import (
	"strings"

	"blog-backend/utils"

	"github.com/gin-gonic/gin"
)

// CallerIDKey is the gin context key holding the authenticated caller id.
const CallerIDKey = "user_id"

// bearerToken returns the token carried by the Authorization header. The
// "Bearer" prefix is optional and surrounding quotes are tolerated.
func bearerToken(c *gin.Context) (string, bool, error) {
	authHeader := strings.Trim(c.GetHeader("Authorization"), "\"' ")
	if authHeader == "" {
		return "", false, nil
	}

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", true, utils.NewUnauthenticatedError("Invalid authorization format, expected: Bearer <token>")
	}
	return strings.Trim(parts[1], "\"' "), true, nil
}

// CallerIdentity resolves the optional bearer token into a caller id stored
// under CallerIDKey. Requests without a token pass through anonymously;
// requests with an invalid or expired token are rejected with 401.
func CallerIdentity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present, err := bearerToken(c)
		if err != nil {
			utils.SendAppError(c, err)
			c.Abort()
			return
		}
		if !present {
			c.Next()
			return
		}

		claims, err := utils.DecodeJWT(token, secret)
		if err != nil {
			utils.SendAppError(c, utils.NewUnauthenticatedError("Invalid or expired token"))
			c.Abort()
			return
		}
		sub, err := utils.SubjectFromClaims(claims)
		if err != nil {
			utils.SendAppError(c, utils.NewUnauthenticatedError("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(CallerIDKey, sub)
		c.Next()
	}
}

// CallerID returns the caller resolved by CallerIdentity, or "" when anonymous.
func CallerID(c *gin.Context) string {
	return c.GetString(CallerIDKey)
}
