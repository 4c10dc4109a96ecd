package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"opsdesk/model"
	"opsdesk/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorKey = "actor"

func AccessTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		tokenString := strings.Replace(header, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET_KEY")), nil
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token is expired or invalid: " + err.Error()})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		actor := model.ActorContext{}
		actor.EmployeeID, _ = claims["employeeId"].(string)
		actor.Name, _ = claims["employeeName"].(string)
		actor.Department, _ = claims["department"].(string)
		actor.Role, _ = claims["role"].(string)
		if actor.EmployeeID == "" || actor.Name == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid actor in token claims"})
			return
		}

		// Prefer the cached actor: role or department edits made since the
		// token was minted take effect immediately.
		if tokenID, _ := claims["tokenId"].(string); tokenID != "" {
			if cached, found := services.CachedActor(tokenID); found {
				actor = cached
			}
			c.Set("tokenId", tokenID)
		}

		c.Set("claims", claims)
		c.Set(actorKey, actor)
		c.Next()
	}
}

func HeadMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		if !actor.IsHead() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

func RefreshTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is missing"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}
		refreshToken := bearerToken[1]

		token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_REFRESH_SECRET_KEY")), nil
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid refresh token: " + err.Error()})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token claims"})
			return
		}
		employeeID, found := claims["employeeId"].(string)
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims: employeeId not found"})
			return
		}

		c.Set("employeeId", employeeID)
		c.Set("refreshToken", refreshToken)
		c.Next()
	}
}

// ActorFromContext returns the ActorContext the access middleware stored for
// this request.
func ActorFromContext(c *gin.Context) model.ActorContext {
	value, exists := c.Get(actorKey)
	if !exists {
		return model.ActorContext{}
	}
	actor, ok := value.(model.ActorContext)
	if !ok {
		return model.ActorContext{}
	}
	return actor
}
