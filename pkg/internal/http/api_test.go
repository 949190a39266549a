package http

import (
	"bytes"
	"io"
	stdhttp "net/http"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yatube/server/pkg/internal/cache"
	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/http/api"
	"github.com/yatube/server/pkg/internal/security"
	"github.com/yatube/server/pkg/internal/services"
)

var testApp *fiber.App

func TestMain(m *testing.M) {
	source, err := gorm.Open(sqlite.Open("file:httptest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		panic(err)
	}
	database.C = source
	if err := database.RunMigration(database.C); err != nil {
		panic(err)
	}

	if err := cache.NewStore(); err != nil {
		panic(err)
	}

	services.Reader, err = security.NewTokenReader("test-secret", time.Minute, time.Hour)
	if err != nil {
		panic(err)
	}

	media, err := os.MkdirTemp("", "yatube-media")
	if err != nil {
		panic(err)
	}
	viper.Set("media.root", media)

	testApp = fiber.New(fiber.Config{
		JSONEncoder: jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder: jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
	})
	testApp.Use(authMiddleware)
	api.MapAPIs(testApp, "/api/v1")

	code := m.Run()
	os.RemoveAll(media)
	os.Exit(code)
}

func request(t *testing.T, method, path, token string, payload any) *stdhttp.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := jsoniter.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := stdhttp.NewRequest(method, path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if len(token) > 0 {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := testApp.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *stdhttp.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, jsoniter.Unmarshal(raw, out))
}

func TestPublishingScenario(t *testing.T) {
	// Register alice
	resp := request(t, fiber.MethodPost, "/api/v1/users/", "", fiber.Map{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "pw1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Same username, different email
	resp = request(t, fiber.MethodPost, "/api/v1/users/", "", fiber.Map{
		"username": "alice",
		"email":    "alice2@x.com",
		"password": "pw1",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Login
	resp = request(t, fiber.MethodPost, "/api/v1/jwt/create", "", fiber.Map{
		"username": "alice",
		"password": "pw1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	decode(t, resp, &tokens)
	require.NotEmpty(t, tokens.Access)
	require.NotEmpty(t, tokens.Refresh)

	// Wrong password
	resp = request(t, fiber.MethodPost, "/api/v1/jwt/create", "", fiber.Map{
		"username": "alice",
		"password": "pw2",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Refresh flow
	resp = request(t, fiber.MethodPost, "/api/v1/jwt/refresh", "", fiber.Map{
		"refresh": tokens.Refresh,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A refresh token is not a bearer credential
	resp = request(t, fiber.MethodGet, "/api/v1/users/me", tokens.Refresh, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Post into a nonexistent group
	resp = request(t, fiber.MethodPost, "/api/v1/posts/", tokens.Access, fiber.Map{
		"body":  "hello world",
		"group": 999,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Post without a group
	resp = request(t, fiber.MethodPost, "/api/v1/posts/", tokens.Access, fiber.Map{
		"body": "hello world",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var post struct {
		ID      uint  `json:"id"`
		GroupID *uint `json:"group_id"`
		Author  struct {
			Username string `json:"username"`
		} `json:"author"`
	}
	decode(t, resp, &post)
	assert.Equal(t, "alice", post.Author.Username)
	assert.Nil(t, post.GroupID)

	// Unauthenticated mutation
	resp = request(t, fiber.MethodPut, "/api/v1/posts/1", "", fiber.Map{
		"body": "hijacked",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Register bob and try to edit alice's post
	resp = request(t, fiber.MethodPost, "/api/v1/users/", "", fiber.Map{
		"username": "bob",
		"email":    "bob@x.com",
		"password": "pw2",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = request(t, fiber.MethodPost, "/api/v1/jwt/create", "", fiber.Map{
		"username": "bob",
		"password": "pw2",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var bobTokens struct {
		Access string `json:"access"`
	}
	decode(t, resp, &bobTokens)

	resp = request(t, fiber.MethodPut, "/api/v1/posts/1", bobTokens.Access, fiber.Map{
		"body": "bob was here",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Bob can comment, alice cannot edit his comment
	resp = request(t, fiber.MethodPost, "/api/v1/posts/1/comments/", bobTokens.Access, fiber.Map{
		"body": "nice post",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var comment struct {
		ID uint `json:"id"`
	}
	decode(t, resp, &comment)

	resp = request(t, fiber.MethodPatch, "/api/v1/posts/1/comments/1", tokens.Access, fiber.Map{
		"body": "rewritten",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestVerifyTokenEndpoint(t *testing.T) {
	resp := request(t, fiber.MethodPost, "/api/v1/jwt/verify", "", fiber.Map{
		"token": "garbage",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
