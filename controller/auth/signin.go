package auth

import (
	"net/http"
	"time"

	"opsdesk/common"
	"opsdesk/dto"
	"opsdesk/model"
	"opsdesk/services"

	firebaseauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func SignInController(router *gin.Engine, store *services.Store, authClient *firebaseauth.Client) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, store, authClient)
	})
}

// Signin exchanges a Firebase ID token for an opsdesk session. Credential
// verification is entirely the auth service's job; this handler only links
// the verified identity to its employee record.
func Signin(c *gin.Context, store *services.Store, authClient *firebaseauth.Client) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	idToken, err := authClient.VerifyIDToken(ctx, request.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	employee, err := services.FindEmployeeByUID(ctx, store, idToken.UID)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	if employee.Deleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Employee account is deleted"})
		return
	}
	switch employee.Status {
	case model.EmployeeInactive:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Employee account is not active"})
		return
	case model.EmployeeDisabled:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Employee account is disabled"})
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
	refreshToken, err := services.CreateRefreshToken(employee.DocID, tokenID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}
	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour).Unix()
	refreshTokenData := model.TokenResponse{
		EmployeeID:   employee.DocID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    now.Unix(),
		Revoked:      false,
		ExpiresIn:    expiresAt - now.Unix(),
	}
	if err := store.Patch(ctx, services.CollectionRefreshTokens, employee.DocID, map[string]interface{}{
		"employeeId":   refreshTokenData.EmployeeID,
		"refreshToken": refreshTokenData.RefreshToken,
		"createdAt":    refreshTokenData.CreatedAt,
		"revoked":      refreshTokenData.Revoked,
		"expiresIn":    refreshTokenData.ExpiresIn,
	}); err != nil {
		common.RespondError(c, err)
		return
	}

	services.CacheActor(tokenID, actor)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"actor":   actor,
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}
