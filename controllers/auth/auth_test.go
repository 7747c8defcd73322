package authController_test

import (
	"chainlearn/config"
	"chainlearn/database"
	"chainlearn/models"
	authRoutes "chainlearn/routers/authRoutes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{Port: "3000", JWTKey: "test-secret"}

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &out))
	}
	return resp, out
}

func TestLoginCreatesUserOnce(t *testing.T) {
	app, db := setupTestApp(t)

	resp, out := doJSON(t, app, "POST", "/api/auth/login", `{"walletAddress":"0xABC"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, out["token"])
	first := out["user"].(map[string]interface{})
	require.Equal(t, "0xABC", first["walletAddress"])

	resp, out = doJSON(t, app, "POST", "/api/auth/login", `{"walletAddress":"0xABC"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := out["user"].(map[string]interface{})
	require.Equal(t, first["id"], second["id"])

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("wallet_address = ?", "0xABC").Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestLoginMissingWallet(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/auth/login", `{}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUserByWallet(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{WalletAddress: "0xDEF"}
	require.NoError(t, db.Create(&user).Error)

	resp, out := doJSON(t, app, "GET", "/api/auth/user/0xDEF", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, user.ID, out["user"].(map[string]interface{})["id"])

	resp, _ = doJSON(t, app, "GET", "/api/auth/user/0xUNKNOWN", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{WalletAddress: "0x123"}
	require.NoError(t, db.Create(&user).Error)

	resp, out := doJSON(t, app, "PUT", "/api/auth/user/"+user.ID,
		`{"username":"satoshi","email":"satoshi@example.com","profileImage":"https://img.example/s.png"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := out["user"].(map[string]interface{})
	require.Equal(t, "satoshi", updated["username"])
	require.Equal(t, "satoshi@example.com", updated["email"])

	resp, _ = doJSON(t, app, "PUT", "/api/auth/user/no-such-user", `{"username":"x"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateProfileBadEmail(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{WalletAddress: "0x456"}
	require.NoError(t, db.Create(&user).Error)

	resp, _ := doJSON(t, app, "PUT", fmt.Sprintf("/api/auth/user/%s", user.ID), `{"email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
