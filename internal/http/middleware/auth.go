package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey = "user_id"
	roleKey   = "role"

	// DefaultUserID stands in for the seeded traveler when no token is
	// presented; the booking workflow itself does not require login.
	DefaultUserID = "u1"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

// IssueToken signs an HS256 token carrying user id and role.
func IssueToken(secret, userID, role string, expiresAt int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     expiresAt,
	})
	return token.SignedString([]byte(secret))
}

func parseToken(secret, raw string) (userID, role string, ok bool) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, isHMAC := t.Method.(*jwt.SigningMethodHMAC); !isHMAC {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", false
	}
	claims, isMap := token.Claims.(jwt.MapClaims)
	if !isMap {
		return "", "", false
	}
	userID, _ = claims["user_id"].(string)
	role, _ = claims["role"].(string)
	return userID, role, userID != ""
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// AuthOptional attaches identity claims when a valid token is presented and
// falls back to the seeded traveler otherwise.
func AuthOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := bearerToken(c); raw != "" {
			if userID, role, ok := parseToken(secret, raw); ok {
				c.Set(userIDKey, userID)
				c.Set(roleKey, role)
			}
		}
		c.Next()
	}
}

// RequireAdmin rejects requests without a valid token carrying the admin role.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		userID, role, ok := parseToken(secret, raw)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Set(userIDKey, userID)
		c.Set(roleKey, role)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, or the seeded traveler
// when the request carried no identity.
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get(userIDKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return DefaultUserID
}

// IsAdmin reports whether the request carries the admin role.
func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get(roleKey)
	return ok && v == RoleAdmin
}
