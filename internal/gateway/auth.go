// internal/gateway/auth.go
package gateway

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apierrors "resume-services/internal/common/errors"
)

// TokenTTL matches the session length issued by the web frontend.
const TokenTTL = 7 * 24 * time.Hour

const (
	ctxUserIDKey = "userID"
	ctxEmailKey  = "userEmail"
)

// Claims carries the authenticated user identity.
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// CreateToken issues an HS256 access token for a user.
func CreateToken(secret, userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates an HS256 access token and returns its claims.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.TokenType != "access" {
		return nil, fmt.Errorf("unexpected token type %q", claims.TokenType)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token carries no user id")
	}
	return claims, nil
}

// AuthMiddleware validates the bearer token and stores the user identity on
// the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, apierrors.NewAuthRequiredError())
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			unauthorized(c, apierrors.NewAuthInvalidError("expected 'Bearer <token>'"))
			return
		}

		claims, err := ParseToken(secret, parts[1])
		if err != nil {
			unauthorized(c, apierrors.NewAuthInvalidError(err.Error()))
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxEmailKey, claims.Email)
		c.Next()
	}
}

func unauthorized(c *gin.Context, apiErr *apierrors.APIError) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(apiErr.Status(), apiErr)
}
