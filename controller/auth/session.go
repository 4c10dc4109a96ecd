package auth

import (
	"net/http"
	"time"

	"opsdesk/common"
	"opsdesk/middleware"
	"opsdesk/model"
	"opsdesk/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func SessionController(router *gin.Engine, store *services.Store) {
	router.POST("/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		Refresh(c, store)
	})
	router.POST("/auth/signout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Signout(c, store)
	})
}

// Refresh validates the presented refresh token against its stored hash and
// rotates the session: new token id, new token pair, new stored hash.
func Refresh(c *gin.Context, store *services.Store) {
	employeeID := c.MustGet("employeeId").(string)
	refreshToken := c.MustGet("refreshToken").(string)

	ctx := c.Request.Context()
	doc, err := store.ReadDoc(ctx, services.CollectionRefreshTokens, employeeID)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	data := doc.Data()
	storedHash, _ := data["refreshToken"].(string)
	revoked, _ := data["revoked"].(bool)
	if revoked || services.CompareRefreshToken(storedHash, refreshToken) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is revoked or does not match"})
		return
	}

	employee, err := services.FindEmployeeByDocID(ctx, store, employeeID)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	actor := model.ActorContext{
		EmployeeID: employee.DocID,
		Name:       employee.EmployeeName,
		Department: employee.Department,
		Role:       employee.Role,
	}

	tokenID := uuid.New().String()
	accessToken, err := services.CreateAccessToken(actor, tokenID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}
	newRefreshToken, err := services.CreateRefreshToken(employee.DocID, tokenID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}
	hashed, err := services.HashRefreshToken(newRefreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	now := time.Now()
	if err := store.Patch(ctx, services.CollectionRefreshTokens, employee.DocID, map[string]interface{}{
		"refreshToken": hashed,
		"createdAt":    now.Unix(),
		"revoked":      false,
	}); err != nil {
		common.RespondError(c, err)
		return
	}

	services.CacheActor(tokenID, actor)

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": newRefreshToken,
		},
	})
}

// Signout revokes the stored refresh token and evicts the cached actor.
func Signout(c *gin.Context, store *services.Store) {
	actor := middleware.ActorFromContext(c)

	ctx := c.Request.Context()
	if err := store.Patch(ctx, services.CollectionRefreshTokens, actor.EmployeeID, map[string]interface{}{
		"revoked": true,
	}); err != nil {
		common.RespondError(c, err)
		return
	}

	if tokenID := c.GetString("tokenId"); tokenID != "" {
		services.EvictActor(tokenID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
