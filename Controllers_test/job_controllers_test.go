package Controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/udyogsaathi/udyog-saathi/controllers"
	"github.com/udyogsaathi/udyog-saathi/middlewares"
	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/utils"
)

func setupJobTestDB(name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(
		&models.Job{},
		&models.WorkerProfile{},
		&models.InstantService{},
		&models.Like{},
		&models.Comment{},
	); err != nil {
		panic(err)
	}
	return db
}

func setupJobRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	jobCtrl := controllers.NewJobController(db)
	listingCtrl := controllers.NewListingController(db)
	socialCtrl := controllers.NewSocialController(db)

	r.GET("/api/jobs", jobCtrl.GetAllJobs)
	r.POST("/api/jobs", jobCtrl.CreateJob)
	r.DELETE("/api/delete/:type/:id", listingCtrl.DeleteListing)

	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())
	auth.POST("/jobs/:id/like", socialCtrl.LikeJob)
	auth.POST("/jobs/:id/comments", socialCtrl.CommentJob)
	return r
}

func TestJobFeedAndCreate(t *testing.T) {
	utils.InitLogger()
	db := setupJobTestDB("jobs_feed_test")
	r := setupJobRouter(db)

	w := postJSON(t, r, "/api/jobs", map[string]string{
		"title":      "Electrician Needed",
		"salary":     "15000/month",
		"location":   "Nashik",
		"ownerEmail": "shop@example.com",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	req, _ := http.NewRequest("GET", "/api/jobs", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	jobs := resp["data"].([]interface{})
	assert.Len(t, jobs, 1)
	assert.Equal(t, "Electrician Needed", jobs[0].(map[string]interface{})["title"])
}

func TestJobFeedCap(t *testing.T) {
	utils.InitLogger()
	db := setupJobTestDB("jobs_cap_test")
	r := setupJobRouter(db)

	for i := 0; i < controllers.FeedLimit+5; i++ {
		db.Create(&models.Job{
			Title:      fmt.Sprintf("Job %d", i),
			OwnerEmail: "shop@example.com",
		})
	}

	req, _ := http.NewRequest("GET", "/api/jobs", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Len(t, resp["data"].([]interface{}), controllers.FeedLimit)
}

func TestJobFeedServesStaleSnapshotOnQueryFailure(t *testing.T) {
	utils.InitLogger()
	db := setupJobTestDB("jobs_fallback_test")
	r := setupJobRouter(db)

	w := postJSON(t, r, "/api/jobs", map[string]string{
		"title":      "Mason Wanted",
		"ownerEmail": "builder@example.com",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// First read succeeds and populates the snapshot.
	req, _ := http.NewRequest("GET", "/api/jobs", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	firstBody := rec.Body.String()

	// Break the underlying query; the feed must keep answering with the
	// stale snapshot rather than an error.
	assert.NoError(t, db.Migrator().DropTable(&models.Job{}))

	req, _ = http.NewRequest("GET", "/api/jobs", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, firstBody, rec.Body.String())
}

func TestJobFeedErrorsWhenNoSnapshotExists(t *testing.T) {
	utils.InitLogger()
	db := setupJobTestDB("jobs_cold_fail_test")
	r := setupJobRouter(db)

	assert.NoError(t, db.Migrator().DropTable(&models.Job{}))

	req, _ := http.NewRequest("GET", "/api/jobs", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDeleteListingIgnoresMissingID(t *testing.T) {
	utils.InitLogger()
	db := setupJobTestDB("jobs_delete_test")
	r := setupJobRouter(db)

	req, _ := http.NewRequest("DELETE", "/api/delete/job/99999", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, _ = http.NewRequest("DELETE", "/api/delete/house/1", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLikeAndCommentOnJob(t *testing.T) {
	utils.InitLogger()
	db := setupJobTestDB("jobs_social_test")
	r := setupJobRouter(db)

	job := models.Job{Title: "Painter Needed", OwnerEmail: "shop@example.com"}
	assert.NoError(t, db.Create(&job).Error)

	token, err := utils.GenerateToken(7, "fan@example.com", "worker")
	assert.NoError(t, err)
	authHeader := map[string]string{"Authorization": "Bearer " + token}

	// Unauthenticated likes are rejected.
	w := postJSON(t, r, "/api/jobs/1/like", map[string]string{}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, r, "/api/jobs/1/like", map[string]string{}, authHeader)
	assert.Equal(t, http.StatusCreated, w.Code)

	// A repeat like from the same account collapses.
	w = postJSON(t, r, "/api/jobs/1/like", map[string]string{}, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	var likeCount int64
	db.Model(&models.Like{}).Count(&likeCount)
	assert.Equal(t, int64(1), likeCount)

	w = postJSON(t, r, "/api/jobs/1/comments", map[string]string{
		"userName": "Fan",
		"text":     "Is this still open?",
	}, authHeader)
	assert.Equal(t, http.StatusCreated, w.Code)

	// The feed carries the social sub-objects.
	req, _ := http.NewRequest("GET", "/api/jobs", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	feedJob := resp["data"].([]interface{})[0].(map[string]interface{})
	assert.Len(t, feedJob["likes"].([]interface{}), 1)
	comments := feedJob["comments"].([]interface{})
	assert.Len(t, comments, 1)
	assert.Equal(t, "Is this still open?", comments[0].(map[string]interface{})["text"])

	// Social actions against a missing post 404.
	w = postJSON(t, r, "/api/jobs/424242/like", map[string]string{}, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
