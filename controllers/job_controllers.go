package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/services"
	"github.com/udyogsaathi/udyog-saathi/utils"
	"gorm.io/gorm"
)

// FeedLimit caps every primary feed read.
const FeedLimit = 10

type JobController struct {
	DB    *gorm.DB
	cache *services.FeedCache
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{DB: db, cache: services.NewFeedCache()}
}

// GetAllJobs returns the capped job feed. Every call hits the store; on a
// failed query the last successful snapshot is served instead, when one
// exists.
func (jc *JobController) GetAllJobs(c *gin.Context) {
	var jobs []models.Job
	err := jc.DB.
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Limit(FeedLimit).
		Find(&jobs).Error
	if err != nil {
		if snap, ok := jc.cache.Last(); ok {
			utils.ErrorLogger.Printf("jobs feed query failed, serving stale snapshot: %v", err)
			utils.RespondJSON(c, http.StatusOK, "List of jobs", snap.Data)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	jc.cache.Store(jobs)
	utils.RespondJSON(c, http.StatusOK, "List of jobs", jobs)
}

// CreateJob posts a new job listing.
func (jc *JobController) CreateJob(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Salary      string `json:"salary"`
		Location    string `json:"location"`
		Description string `json:"description"`
		Contact     string `json:"contact"`
		OwnerEmail  string `json:"ownerEmail" binding:"required"`
		OwnerName   string `json:"ownerName"`
		OwnerPic    string `json:"ownerPic"`
		Image       string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	job := models.Job{
		Title:       req.Title,
		Salary:      req.Salary,
		Location:    req.Location,
		Description: req.Description,
		Contact:     req.Contact,
		OwnerEmail:  req.OwnerEmail,
		OwnerName:   req.OwnerName,
		OwnerPic:    req.OwnerPic,
		Image:       req.Image,
	}
	if err := jc.DB.Create(&job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Job posted", job)
}
