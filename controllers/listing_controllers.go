package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/utils"
	"gorm.io/gorm"
)

type ListingController struct {
	DB *gorm.DB
}

func NewListingController(db *gorm.DB) *ListingController {
	return &ListingController{DB: db}
}

// DeleteListing removes one listing by type. Deleting an id that does not
// exist is not reported as an error.
func (lc *ListingController) DeleteListing(c *gin.Context) {
	listingType := c.Param("type")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid listing id %q", c.Param("id")))
		return
	}

	var target interface{}
	switch listingType {
	case "job":
		target = &models.Job{}
	case "worker":
		target = &models.WorkerProfile{}
	case "instant":
		target = &models.InstantService{}
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown listing type %q", listingType))
		return
	}

	if err := lc.DB.Delete(target, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "deleted", gin.H{"type": listingType, "id": id})
}
