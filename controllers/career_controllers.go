package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/services"
	"github.com/udyogsaathi/udyog-saathi/utils"
)

// CareerController is a thin wrapper over the AI proxy service. Upstream
// failures never reach the client; the service substitutes its fallback
// reply.
type CareerController struct {
	Service *services.CareerService
}

func NewCareerController(svc *services.CareerService) *CareerController {
	return &CareerController{Service: svc}
}

func (cc *CareerController) GetGuidance(c *gin.Context) {
	var req struct {
		UserDetails struct {
			Name string `json:"name"`
		} `json:"userDetails"`
		Query string `json:"query" binding:"required"`
		Lang  string `json:"lang"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reply := cc.Service.Advise(req.UserDetails.Name, req.Query, req.Lang)
	utils.RespondJSON(c, http.StatusOK, "Career guidance", gin.H{"aiReply": reply})
}
