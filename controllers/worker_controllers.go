package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/services"
	"github.com/udyogsaathi/udyog-saathi/utils"
	"gorm.io/gorm"
)

type WorkerProfileController struct {
	DB    *gorm.DB
	cache *services.FeedCache
}

func NewWorkerProfileController(db *gorm.DB) *WorkerProfileController {
	return &WorkerProfileController{DB: db, cache: services.NewFeedCache()}
}

// GetAllWorkerProfiles returns the capped worker feed with the same
// degraded-mode fallback as the job feed.
func (wc *WorkerProfileController) GetAllWorkerProfiles(c *gin.Context) {
	var profiles []models.WorkerProfile
	err := wc.DB.
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Limit(FeedLimit).
		Find(&profiles).Error
	if err != nil {
		if snap, ok := wc.cache.Last(); ok {
			utils.ErrorLogger.Printf("worker feed query failed, serving stale snapshot: %v", err)
			utils.RespondJSON(c, http.StatusOK, "List of worker profiles", snap.Data)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	wc.cache.Store(profiles)
	utils.RespondJSON(c, http.StatusOK, "List of worker profiles", profiles)
}

// CreateWorkerProfile posts a new worker profile.
func (wc *WorkerProfileController) CreateWorkerProfile(c *gin.Context) {
	var req struct {
		Name           string `json:"name" binding:"required"`
		Skill          string `json:"skill"`
		ExpectedSalary string `json:"expectedSalary"`
		Location       string `json:"location"`
		Experience     string `json:"experience"`
		Contact        string `json:"contact"`
		Email          string `json:"email" binding:"required"`
		OwnerName      string `json:"ownerName"`
		OwnerPic       string `json:"ownerPic"`
		Image          string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	profile := models.WorkerProfile{
		Name:           req.Name,
		Skill:          req.Skill,
		ExpectedSalary: req.ExpectedSalary,
		Location:       req.Location,
		Experience:     req.Experience,
		Contact:        req.Contact,
		Email:          req.Email,
		OwnerName:      req.OwnerName,
		OwnerPic:       req.OwnerPic,
		Image:          req.Image,
	}
	if err := wc.DB.Create(&profile).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Worker profile posted", profile)
}
