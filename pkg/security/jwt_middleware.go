package security

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	custom_error "github.com/XenomaCode/MVP-CATERING/pkg/errors"
	"github.com/XenomaCode/MVP-CATERING/pkg/roles"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTMiddleware validates the bearer token and extracts claims.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return jwtSecret, nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("userID", claims["userID"])
		c.Set("role", claims["role"])
		c.Set("username", claims["username"])
		c.Next()
	}
}

// RequireCapability is the single authorization point: every mutating or
// reading route declares the capability it needs and the user's role either
// holds it or the request stops here. A missing credential and an
// insufficient role both answer 401.
func RequireCapability(capability roles.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := contextRole(c)
		if !ok {
			return
		}

		if !role.IsValid() || !role.Can(capability) {
			abortUnauthorized(c)
			return
		}

		c.Next()
	}
}

// RequireCapabilityOrSelf passes when the :id parameter matches the
// authenticated user, so users reach their own record without the capability.
func RequireCapabilityOrSelf(capability roles.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := contextRole(c)
		if !ok {
			return
		}

		if role.IsValid() && role.Can(capability) {
			c.Next()
			return
		}

		currentID, err := CurrentUserID(c)
		if err == nil && c.Param("id") == strconv.Itoa(currentID) {
			c.Next()
			return
		}

		abortUnauthorized(c)
	}
}

func abortUnauthorized(c *gin.Context) {
	err := custom_error.NewUnauthorizedError("No autorizado")
	c.JSON(custom_error.HTTPStatus(err), gin.H{"error": err.Error()})
	c.Abort()
}

func contextRole(c *gin.Context) (roles.Role, bool) {
	raw, exists := c.Get("role")
	if !exists {
		abortUnauthorized(c)
		return "", false
	}

	roleStr, ok := raw.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid role format"})
		c.Abort()
		return "", false
	}

	return roles.Role(roleStr), true
}
