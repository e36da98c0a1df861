package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/services"
	"github.com/udyogsaathi/udyog-saathi/utils"
)

// UploadController proxies base64 image payloads to the CDN.
type UploadController struct {
	Service *services.UploadService
}

func NewUploadController(svc *services.UploadService) *UploadController {
	return &UploadController{Service: svc}
}

func (uc *UploadController) UploadImage(c *gin.Context) {
	var req struct {
		Data string `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	url, err := uc.Service.Upload(req.Data)
	if err != nil {
		utils.ErrorLogger.Printf("image upload failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("image upload failed"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Image uploaded", gin.H{"url": url})
}
