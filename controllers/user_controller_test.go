package controllers

import (
	"net/http"
	"testing"

	"github.com/Sishir120/PackYourBags-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter() *gin.Engine {
	r := gin.New()
	uc := NewUserController()
	r.POST("/api/auth/register", uc.Register)
	r.POST("/api/auth/login", uc.Login)
	return r
}

func profileRouter(userID uint) *gin.Engine {
	r := gin.New()
	pc := NewUserProfileController()
	auth := r.Group("/api/auth", authAs(userID))
	auth.GET("/profile", pc.GetProfile)
	auth.POST("/change-password", pc.ChangePassword)
	auth.POST("/upgrade-tier", pc.UpgradeTier)
	auth.POST("/preferences", pc.UpdatePreferences)
	return r
}

func TestRegisterIssuesTokenAndFreeCredits(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter()

	w := performJSON(r, "POST", "/api/auth/register", gin.H{
		"email":    "New@Example.com",
		"password": "supersecret",
		"name":     "Dana",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeResult(t, w)
	result := env["result"].(map[string]interface{})
	assert.NotEmpty(t, result["token"])

	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, models.TierFree, user.Tier)
	assert.Equal(t, models.TierCredits[models.TierFree], user.AICredits)
	assert.NotEqual(t, "supersecret", user.Password)
}

func TestRegisterRejectsDuplicateAndWeakPassword(t *testing.T) {
	setupTestDB(t)
	r := authRouter()

	body := gin.H{"email": "dup@example.com", "password": "supersecret"}
	w := performJSON(r, "POST", "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(r, "POST", "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(r, "POST", "/api/auth/register", gin.H{"email": "a@b.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginChecksCredentials(t *testing.T) {
	setupTestDB(t)
	r := authRouter()

	performJSON(r, "POST", "/api/auth/register", gin.H{"email": "dana@example.com", "password": "supersecret"})

	w := performJSON(r, "POST", "/api/auth/login", gin.H{"email": "dana@example.com", "password": "supersecret"})
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeResult(t, w)
	result := env["result"].(map[string]interface{})
	assert.NotEmpty(t, result["token"])

	w = performJSON(r, "POST", "/api/auth/login", gin.H{"email": "dana@example.com", "password": "wrongpass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performJSON(r, "POST", "/api/auth/login", gin.H{"email": "ghost@example.com", "password": "whatever"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpgradeTierResetsCredits(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 2)
	r := profileRouter(user.ID)

	w := performJSON(r, "POST", "/api/auth/upgrade-tier", gin.H{"tier": "Explorer"})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, models.TierExplorer, fresh.Tier)
	assert.Equal(t, models.TierCredits[models.TierExplorer], fresh.AICredits)

	w = performJSON(r, "POST", "/api/auth/upgrade-tier", gin.H{"tier": "platinum"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePreferencesAndProfile(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 10)
	r := profileRouter(user.ID)

	w := performJSON(r, "POST", "/api/auth/preferences", gin.H{"preferences": "  budget traveler, loves food  "})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, "GET", "/api/auth/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeResult(t, w)
	result := env["result"].(map[string]interface{})
	assert.Equal(t, "budget traveler, loves food", result["preferences"])
	assert.Nil(t, result["password"])
}

func TestChangePasswordVerifiesOldOne(t *testing.T) {
	db := setupTestDB(t)
	authR := authRouter()
	performJSON(authR, "POST", "/api/auth/register", gin.H{"email": "dana@example.com", "password": "supersecret"})

	var user models.User
	require.NoError(t, db.First(&user).Error)
	r := profileRouter(user.ID)

	w := performJSON(r, "POST", "/api/auth/change-password", gin.H{"old_password": "nope", "new_password": "freshsecret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performJSON(r, "POST", "/api/auth/change-password", gin.H{"old_password": "supersecret", "new_password": "freshsecret"})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(authR, "POST", "/api/auth/login", gin.H{"email": "dana@example.com", "password": "freshsecret"})
	assert.Equal(t, http.StatusOK, w.Code)
}
