package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-vault/internal/dto"
	"user-vault/internal/model"
	"user-vault/internal/pkg/config"
	"user-vault/internal/pkg/jwt"
	"user-vault/pkg/constants"
	"user-vault/pkg/responses"
)

type stubService struct{}

func (stubService) List(context.Context, model.Actor, int, int) (*dto.CredentialListResponse, error) {
	return &dto.CredentialListResponse{Credentials: []*dto.CredentialResponse{}}, nil
}
func (stubService) Create(context.Context, model.Actor, string, model.Secret) (*dto.IDResponse, error) {
	return &dto.IDResponse{ID: "id"}, nil
}
func (stubService) Get(_ context.Context, _ model.Actor, id string) (*dto.CredentialResponse, error) {
	return &dto.CredentialResponse{ID: id}, nil
}
func (stubService) Update(_ context.Context, _ model.Actor, id, _ string, _ model.Secret) (*dto.IDResponse, error) {
	return &dto.IDResponse{ID: id}, nil
}
func (stubService) Delete(_ context.Context, _ model.Actor, id string) (*dto.IDResponse, error) {
	return &dto.IDResponse{ID: id}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Mode: "release"},
		Auth:      config.AuthConfig{JWT: config.JWTConfig{Secret: "router-secret", AccessTokenExpire: 60}},
		RateLimit: config.RateLimitConfig{ReadPerMinute: 100, WritePerMinute: 1},
	}
}

func call(t *testing.T, r *gin.Engine, method, path, token, body string) responses.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(constants.HeaderAuthorization, constants.HeaderBearerPrefix+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSetup(t *testing.T) {
	cfg := testConfig()
	prev := config.GlobalConfig
	config.GlobalConfig = cfg
	t.Cleanup(func() { config.GlobalConfig = prev })

	r := Setup(cfg, stubService{}, zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	resp := call(t, r, http.MethodGet, "/api/v1/user-credentials", "", "")
	assert.Equal(t, responses.CodeUnauthorized, resp.Code)

	token, err := jwt.GenerateAccessToken("u1", "o1", "alice")
	require.NoError(t, err)

	resp = call(t, r, http.MethodGet, "/api/v1/user-credentials", token, "")
	assert.Equal(t, responses.CodeSuccess, resp.Code)

	id := "5b1d1c2e-6a5e-4f8a-9c1d-2b3a4c5d6e7f"
	resp = call(t, r, http.MethodGet, "/api/v1/user-credentials/"+id, token, "")
	assert.Equal(t, responses.CodeSuccess, resp.Code)

	// 写接口每分钟 1 次
	resp = call(t, r, http.MethodDelete, "/api/v1/user-credentials/"+id, token, "")
	assert.Equal(t, responses.CodeSuccess, resp.Code)
	resp = call(t, r, http.MethodPost, "/api/v1/user-credentials", token, `{"type":"note","name":"n","content":"c"}`)
	assert.Equal(t, responses.CodeTooManyRequests, resp.Code)

	paths := make(map[string]bool)
	for _, route := range r.Routes() {
		paths[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /api/v1/user-credentials",
		"POST /api/v1/user-credentials",
		"GET /api/v1/user-credentials/:credentialId",
		"PATCH /api/v1/user-credentials/:credentialId",
		"DELETE /api/v1/user-credentials/:credentialId",
	} {
		assert.True(t, paths[want], want)
	}
	assert.False(t, paths["GET /swagger/*any"], "swagger disabled in release mode")
}
