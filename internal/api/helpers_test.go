package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/service"
)

const testJWTSecret = "test-secret"

// stubLLM satisfies service.ChatCompleter with a canned reply or error
type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) ChatCompletion(_ context.Context, _, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
	llm    *stubLLM
}

func newTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.Ingredient{}))

	auth := service.NewAuthService(db, testJWTSecret)
	recipes := service.NewRecipeService(db)
	llm := &stubLLM{reply: "Sounds delicious."}
	chat := service.NewChatService(llm, recipes, nil)

	router := gin.New()
	apiGroup := router.Group("/api")
	NewAuthHandler(auth).RegisterRoutes(apiGroup)
	NewRecipeHandler(recipes, auth).RegisterRoutes(apiGroup)
	NewChatHandler(chat, nil, auth).RegisterRoutes(apiGroup)

	return &testEnv{router: router, db: db, auth: auth, llm: llm}
}

// registerUser creates a user through the service layer and returns a token
func (e *testEnv) registerUser(t *testing.T, email string) (string, *models.User) {
	token, err := e.auth.Register(email, "Passw0rd!", "Test User")
	require.NoError(t, err)

	var user models.User
	require.NoError(t, e.db.Where("email = ?", email).First(&user).Error)
	return token, &user
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func validRecipeBody() map[string]interface{} {
	return map[string]interface{}{
		"title":            "Shakshuka",
		"description":      "Eggs poached in tomato sauce",
		"instructions":     "Simmer sauce. Crack eggs. Cover.",
		"preparation_time": 10,
		"cooking_time":     20,
		"servings":         2,
		"ingredients": []map[string]interface{}{
			{"name": "egg", "quantity": "4", "unit": "pcs"},
			{"name": "tomato", "quantity": "400", "unit": "g"},
		},
	}
}
