package progressController_test

import (
	progressController "chainlearn/controllers/progress"
	"chainlearn/models"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Any interleaving of lesson and quiz completions, duplicates included,
// must leave the user's global XP equal to the sum of awards for the
// distinct completions, and equal to the sum of the per-track counters.
func TestXPAccountingProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		app, db := setupTestApp(t)
		userID, trackID := seedUserAndTrack(t, db, 100)
		enroll(t, app, userID, trackID)

		type op struct {
			lesson bool
			id     int
			score  int
		}

		opGen := rapid.Custom(func(rt *rapid.T) op {
			return op{
				lesson: rapid.Bool().Draw(rt, "lesson"),
				id:     rapid.IntRange(0, 5).Draw(rt, "id"),
				score:  rapid.IntRange(0, 100).Draw(rt, "score"),
			}
		})
		ops := rapid.SliceOfN(opGen, 1, 30).Draw(rt, "ops")

		expectedXP := 0
		doneLessons := map[int]bool{}
		doneQuizzes := map[int]bool{}

		for _, o := range ops {
			if o.lesson {
				resp, out := doJSON(t, app, "POST", "/api/progress/complete-lesson",
					fmt.Sprintf(`{"userId":%q,"trackId":%q,"lessonId":"lesson-%d"}`, userID, trackID, o.id))
				require.Equal(t, http.StatusOK, resp.StatusCode)

				if doneLessons[o.id] {
					require.Equal(t, float64(0), out["xpEarned"])
				} else {
					doneLessons[o.id] = true
					expectedXP += progressController.LessonXP
					require.Equal(t, float64(progressController.LessonXP), out["xpEarned"])
				}
				continue
			}

			resp, out := doJSON(t, app, "POST", "/api/progress/complete-quiz",
				fmt.Sprintf(`{"userId":%q,"trackId":%q,"quizId":"quiz-%d","score":%d}`, userID, trackID, o.id, o.score))
			require.Equal(t, http.StatusOK, resp.StatusCode)

			if doneQuizzes[o.id] {
				require.Equal(t, float64(0), out["xpEarned"])
			} else {
				doneQuizzes[o.id] = true
				award := progressController.QuizXPLow
				if o.score >= progressController.QuizHighScore {
					award = progressController.QuizXPHigh
				}
				expectedXP += award
				require.Equal(t, float64(award), out["xpEarned"])
			}
		}

		require.Equal(t, expectedXP, userXP(t, db, userID))

		var rows []models.UserProgress
		require.NoError(t, db.Where("user_id = ?", userID).Find(&rows).Error)
		perTrackSum := 0
		for _, row := range rows {
			perTrackSum += row.TotalXP
		}
		require.Equal(t, expectedXP, perTrackSum)

		var progress models.UserProgress
		require.NoError(t, db.Where("user_id = ? AND track_id = ?", userID, trackID).First(&progress).Error)
		require.Len(t, progress.LessonIDs(), len(doneLessons))
		require.Len(t, progress.QuizIDs(), len(doneQuizzes))
	})
}
