package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hospital-ops/ward-staffing-api/internal/config"
	"github.com/hospital-ops/ward-staffing-api/internal/database"
	"github.com/hospital-ops/ward-staffing-api/internal/repository"
	"github.com/hospital-ops/ward-staffing-api/internal/services"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 15 * time.Minute,
	}

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, cfg)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/auth/signup", env.handler.Signup)

	w := postJSON(t, r, "/auth/signup", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
		"role":     "admin",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Message string `json:"message"`
		User    struct {
			ID    uint64 `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "User created successfully", response.Message)
	require.Equal(t, "a@x.com", response.User.Email)
	require.Equal(t, "admin", response.User.Role)
	require.NotZero(t, response.User.ID)

	// The password hash never appears in the response.
	require.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_SignupDuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/auth/signup", env.handler.Signup)

	payload := map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
		"role":     "admin",
	}

	w := postJSON(t, r, "/auth/signup", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/auth/signup", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already have an account")
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/auth/signup", env.handler.Signup)

	tests := []struct {
		name      string
		payload   map[string]string
		wantField string
	}{
		{"missing email", map[string]string{"password": "secret1", "role": "admin"}, "Email"},
		{"invalid email", map[string]string{"email": "not-an-email", "password": "secret1", "role": "admin"}, "Email"},
		{"short password", map[string]string{"email": "a@x.com", "password": "abc", "role": "admin"}, "Password"},
		{"missing role", map[string]string{"email": "a@x.com", "password": "secret1"}, "Role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/auth/signup", tt.payload)
			require.Equal(t, http.StatusBadRequest, w.Code)
			// The body names the offending field, not a generic message.
			require.Contains(t, w.Body.String(), tt.wantField)
		})
	}

	// No user row was created by any of the rejected payloads.
	var count int64
	env.db.Table("users").Count(&count)
	require.Zero(t, count)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Signup(services.SignupInput{
		Email:    "a@x.com",
		Password: "secret1",
		Role:     "admin",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/auth/login", env.handler.Login)

	w := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Message string `json:"message"`
		Error   bool   `json:"error"`
		User    struct {
			Email string `json:"email"`
			Token string `json:"token"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Login successful", response.Message)
	require.False(t, response.Error)
	require.Equal(t, "a@x.com", response.User.Email)
	require.NotEmpty(t, response.User.Token)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Signup(services.SignupInput{
		Email:    "a@x.com",
		Password: "secret1",
		Role:     "admin",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/auth/login", env.handler.Login)

	wrongPassword := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "wrong-password",
	})
	unknownEmail := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "nobody@x.com",
		"password": "secret1",
	})

	// Wrong password and unknown email answer identically so the
	// response never reveals which one failed.
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	require.Contains(t, wrongPassword.Body.String(), "Invalid credentials")
}
