package controllers

import (
	"net/http"
	"testing"

	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func aiRouter(userID uint, cfg *config.Config) *gin.Engine {
	r := gin.New()
	ac := NewAIController(services.NewAIService(cfg))
	r.POST("/api/ai/chat", authAs(userID), ac.Chat)
	return r
}

func seedUser(t *testing.T, db *gorm.DB, credits int) models.User {
	t.Helper()
	user := models.User{Email: "u@example.com", Tier: models.TierFree, AICredits: credits}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestAIChatMockAnswerIsFree(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 10)
	r := aiRouter(user.ID, &config.Config{})

	w := performJSON(r, "POST", "/api/ai/chat", gin.H{"message": "plan a weekend in Lisbon"})
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeResult(t, w)
	result := env["result"].(map[string]interface{})
	assert.NotEmpty(t, result["answer"])
	assert.Equal(t, float64(10), result["ai_credits_left"])

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 10, fresh.AICredits)
}

func TestAIChatMockWorksWithZeroCredits(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 0)
	r := aiRouter(user.ID, &config.Config{})

	// without a configured provider the fallback answers and charges nothing
	w := performJSON(r, "POST", "/api/ai/chat", gin.H{"message": "hello"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAIChatRejectsEmptyMessage(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 10)
	r := aiRouter(user.ID, &config.Config{})

	w := performJSON(r, "POST", "/api/ai/chat", gin.H{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(r, "POST", "/api/ai/chat", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAIChatUnknownUser(t *testing.T) {
	setupTestDB(t)
	r := aiRouter(42, &config.Config{})

	w := performJSON(r, "POST", "/api/ai/chat", gin.H{"message": "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
