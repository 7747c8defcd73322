package trackController_test

import (
	"chainlearn/config"
	"chainlearn/database"
	"chainlearn/models"
	trackRoutes "chainlearn/routers/trackRoutes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
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
	trackRoutes.SetupTrackRoutes(app)
	return app, db
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
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

func TestGetTrackByIDUnknown(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := get(t, app, "/api/tracks/no-such-track")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetTrackLessonsOrdered(t *testing.T) {
	app, db := setupTestApp(t)

	track := models.Track{Title: "Ordered Track", Category: "Development"}
	require.NoError(t, db.Create(&track).Error)

	// Insert out of order; the endpoint must sort by order index
	lessons := []models.Lesson{
		{TrackID: track.ID, Title: "Third", OrderIndex: 3},
		{TrackID: track.ID, Title: "First", OrderIndex: 1},
		{TrackID: track.ID, Title: "Second", OrderIndex: 2},
	}
	for i := range lessons {
		require.NoError(t, db.Create(&lessons[i]).Error)
	}

	resp, out := get(t, app, "/api/tracks/"+track.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, track.ID, out["track"].(map[string]interface{})["id"])

	got := out["lessons"].([]interface{})
	require.Len(t, got, 3)
	titles := make([]string, len(got))
	for i, l := range got {
		titles[i] = l.(map[string]interface{})["title"].(string)
	}
	require.Equal(t, []string{"First", "Second", "Third"}, titles)
}

func TestGetLessonWithAndWithoutQuiz(t *testing.T) {
	app, db := setupTestApp(t)

	track := models.Track{Title: "Track", Category: "Development"}
	require.NoError(t, db.Create(&track).Error)

	bare := models.Lesson{TrackID: track.ID, Title: "No Quiz", OrderIndex: 1}
	require.NoError(t, db.Create(&bare).Error)

	quizzed := models.Lesson{TrackID: track.ID, Title: "Has Quiz", OrderIndex: 2}
	require.NoError(t, db.Create(&quizzed).Error)
	quiz := models.Quiz{LessonID: quizzed.ID, Title: "Checkpoint", Questions: datatypes.JSON(`[{"q":"?"}]`)}
	require.NoError(t, db.Create(&quiz).Error)

	resp, out := get(t, app, "/api/lessons/"+bare.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Nil(t, out["quiz"])

	resp, out = get(t, app, "/api/lessons/"+quizzed.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, quiz.ID, out["quiz"].(map[string]interface{})["id"])

	resp, _ = get(t, app, "/api/lessons/no-such-lesson")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetAllTracksNewestFirst(t *testing.T) {
	app, db := setupTestApp(t)
	database.SeedData(db)

	resp, out := get(t, app, "/api/tracks")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out["tracks"].([]interface{}), 5)
}
