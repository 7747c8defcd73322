package adminController_test

import (
	"chainlearn/config"
	"chainlearn/database"
	"chainlearn/middleware"
	"chainlearn/models"
	adminRoutes "chainlearn/routers/adminRoutes"
	jobRoutes "chainlearn/routers/jobRoutes"
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
	adminRoutes.SetupAdminRoutes(app)
	jobRoutes.SetupJobRoutes(app)
	return app, db
}

// adminToken seeds an admin row and mints a token for it
func adminToken(t *testing.T, db *gorm.DB) string {
	t.Helper()

	admin := models.AdminUser{WalletAddress: "0xADMIN", Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)

	token, err := middleware.GenerateJWT(uuid.NewString(), "0xADMIN")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
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

func TestAdminRequiresToken(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/admin/stats", "", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRejectsNonAdminWallet(t *testing.T) {
	app, _ := setupTestApp(t)

	token, err := middleware.GenerateJWT(uuid.NewString(), "0xNOBODY")
	require.NoError(t, err)

	resp, _ := doJSON(t, app, "GET", "/api/admin/stats", token, "")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateTrackAndStats(t *testing.T) {
	app, db := setupTestApp(t)
	token := adminToken(t, db)

	resp, out := doJSON(t, app, "POST", "/api/admin/tracks", token,
		`{"title":"New Track","category":"Development","difficulty":"advanced","totalLessons":5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	trackID := out["trackId"].(string)
	require.NotEmpty(t, trackID)

	var track models.Track
	require.NoError(t, db.Where("id = ?", trackID).First(&track).Error)
	require.Equal(t, "advanced", track.Difficulty)

	resp, out = doJSON(t, app, "GET", "/api/admin/stats", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := out["stats"].(map[string]interface{})
	require.Equal(t, float64(1), stats["totalTracks"])
	require.Equal(t, float64(0), stats["totalUsers"])
	require.Equal(t, float64(0), stats["totalEnrollments"])
	require.Equal(t, float64(0), stats["totalJobs"])
}

func TestCreateTrackMissingTitle(t *testing.T) {
	app, db := setupTestApp(t)
	token := adminToken(t, db)

	resp, _ := doJSON(t, app, "POST", "/api/admin/tracks", token, `{"category":"Development"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateLessonUnknownTrack(t *testing.T) {
	app, db := setupTestApp(t)
	token := adminToken(t, db)

	resp, _ := doJSON(t, app, "POST", "/api/admin/lessons", token,
		`{"trackId":"no-such-track","title":"Orphan"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateQuiz(t *testing.T) {
	app, db := setupTestApp(t)
	token := adminToken(t, db)

	track := models.Track{Title: "T", Category: "Development"}
	require.NoError(t, db.Create(&track).Error)
	lesson := models.Lesson{TrackID: track.ID, Title: "L", OrderIndex: 1}
	require.NoError(t, db.Create(&lesson).Error)

	resp, out := doJSON(t, app, "POST", "/api/admin/quizzes", token,
		fmt.Sprintf(`{"lessonId":%q,"title":"Checkpoint","questions":[{"q":"What is a block?"}]}`, lesson.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var quiz models.Quiz
	require.NoError(t, db.Where("id = ?", out["quizId"]).First(&quiz).Error)
	require.Equal(t, 70, quiz.PassingScore)
}

func TestCreateJobVisibleOnBoard(t *testing.T) {
	app, db := setupTestApp(t)
	token := adminToken(t, db)

	resp, out := doJSON(t, app, "POST", "/api/admin/jobs", token,
		`{"title":"Protocol Engineer","company":"Lido","category":"Developer","requiredSkills":["Go","Solidity"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	jobID := out["jobId"].(string)

	var job models.Job
	require.NoError(t, db.Where("id = ?", jobID).First(&job).Error)
	require.True(t, job.IsActive)
	require.Equal(t, "Remote", job.Location)
	require.Equal(t, []string{"Go", "Solidity"}, job.SkillList())

	resp, out = doJSON(t, app, "GET", "/api/jobs?category=Developer", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out["jobs"].([]interface{}), 1)
}

func TestUpdateTrack(t *testing.T) {
	app, db := setupTestApp(t)
	token := adminToken(t, db)

	track := models.Track{Title: "Before", Category: "Development", Difficulty: "beginner"}
	require.NoError(t, db.Create(&track).Error)

	resp, _ := doJSON(t, app, "PUT", "/api/admin/tracks/"+track.ID, token,
		`{"title":"After","description":"Updated","category":"Fundamentals","difficulty":"intermediate"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.Where("id = ?", track.ID).First(&track).Error)
	require.Equal(t, "After", track.Title)
	require.Equal(t, "Fundamentals", track.Category)
	require.Equal(t, "intermediate", track.Difficulty)

	resp, _ = doJSON(t, app, "PUT", "/api/admin/tracks/no-such-track", token,
		`{"title":"X","category":"Y"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
