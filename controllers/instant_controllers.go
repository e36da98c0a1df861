package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/services"
	"github.com/udyogsaathi/udyog-saathi/utils"
	"gorm.io/gorm"
)

type InstantServiceController struct {
	DB    *gorm.DB
	cache *services.FeedCache
}

func NewInstantServiceController(db *gorm.DB) *InstantServiceController {
	return &InstantServiceController{DB: db, cache: services.NewFeedCache()}
}

// GetAllInstantServices returns the capped instant-service feed with the
// degraded-mode fallback.
func (ic *InstantServiceController) GetAllInstantServices(c *gin.Context) {
	var list []models.InstantService
	if err := ic.DB.Limit(FeedLimit).Find(&list).Error; err != nil {
		if snap, ok := ic.cache.Last(); ok {
			utils.ErrorLogger.Printf("instant feed query failed, serving stale snapshot: %v", err)
			utils.RespondJSON(c, http.StatusOK, "List of instant services", snap.Data)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	ic.cache.Store(list)
	utils.RespondJSON(c, http.StatusOK, "List of instant services", list)
}

// CreateInstantService posts a standing on-demand service offer.
func (ic *InstantServiceController) CreateInstantService(c *gin.Context) {
	var req struct {
		Role        string `json:"role" binding:"required"`
		Experience  string `json:"experience"`
		Budget      string `json:"budget"`
		Location    string `json:"location"`
		PastWork    string `json:"pastWork"`
		FullAddress string `json:"fullAddress"`
		Image       string `json:"image"`
		OwnerEmail  string `json:"ownerEmail" binding:"required"`
		OwnerName   string `json:"ownerName"`
		OwnerPic    string `json:"ownerPic"`
		Contact     string `json:"contact"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ownerName := req.OwnerName
	if ownerName == "" {
		ownerName = "Verified Professional"
	}

	service := models.InstantService{
		Role:        req.Role,
		Experience:  req.Experience,
		Budget:      req.Budget,
		Location:    req.Location,
		PastWork:    req.PastWork,
		FullAddress: req.FullAddress,
		Image:       req.Image,
		OwnerEmail:  req.OwnerEmail,
		OwnerName:   ownerName,
		OwnerPic:    req.OwnerPic,
		Contact:     req.Contact,
	}
	if err := ic.DB.Create(&service).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Instant service posted", service)
}
