package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/utils"
	"gorm.io/gorm"
)

// NotificationLimit caps the notification feed.
const NotificationLimit = 50

// ApplicationController owns the application lifecycle: apply, the
// notification feed, and the pending → approved/declined transition with
// its chat-unlock side effect.
type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

// Apply records a worker's interest in a job as a pending Application.
// Duplicate applications are accepted; the client suppresses repeats.
func (ac *ApplicationController) Apply(c *gin.Context) {
	var req struct {
		JobID            uint   `json:"jobId"`
		JobTitle         string `json:"jobTitle" binding:"required"`
		BusinessEmail    string `json:"businessEmail" binding:"required"`
		ApplicantName    string `json:"applicantName"`
		ApplicantEmail   string `json:"applicantEmail" binding:"required"`
		ApplicantContact string `json:"applicantContact"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	app := models.Application{
		JobID:            req.JobID,
		JobTitle:         req.JobTitle,
		BusinessEmail:    req.BusinessEmail,
		ApplicantName:    req.ApplicantName,
		ApplicantEmail:   req.ApplicantEmail,
		ApplicantContact: req.ApplicantContact,
		Status:           models.StatusPending,
	}
	if err := ac.DB.Create(&app).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Applied!", app)
}

// CreateNotification records an interest ping that carries no job id —
// the same pending Application record under a different request shape.
func (ac *ApplicationController) CreateNotification(c *gin.Context) {
	var req struct {
		ToEmail   string `json:"toEmail" binding:"required"`
		FromEmail string `json:"fromEmail" binding:"required"`
		FromName  string `json:"fromName"`
		Title     string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	app := models.Application{
		JobTitle:       req.Title,
		BusinessEmail:  req.ToEmail,
		ApplicantName:  req.FromName,
		ApplicantEmail: req.FromEmail,
		Status:         models.StatusPending,
	}
	if err := ac.DB.Create(&app).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification created", app)
}

// GetNotifications returns every Application where the given email is the
// business or the applicant, newest first. The caller re-derives its role
// per record by comparing emails.
func (ac *ApplicationController) GetNotifications(c *gin.Context) {
	email := c.Param("email")

	var apps []models.Application
	err := ac.DB.
		Where("business_email = ? OR applicant_email = ?", email, email).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(NotificationLimit).
		Find(&apps).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notifications", apps)
}

// ClearNotifications bulk-clears every Application the email is part of,
// in either role. Individual deletion is intentionally not exposed.
func (ac *ApplicationController) ClearNotifications(c *gin.Context) {
	email := c.Param("email")

	if err := ac.DB.
		Where("business_email = ? OR applicant_email = ?", email, email).
		Delete(&models.Application{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "cleared", nil)
}

// UpdateNotificationStatus applies a guarded status transition with no
// side effect.
func (ac *ApplicationController) UpdateNotificationStatus(c *gin.Context) {
	ac.setStatus(c, false)
}

// UpdateApplicationStatus applies a guarded status transition and, on
// approval, unlocks chat by persisting the system message from the
// business to the applicant.
func (ac *ApplicationController) UpdateApplicationStatus(c *gin.Context) {
	ac.setStatus(c, true)
}

// setStatus moves one Application along the state machine. Repeating the
// current status is an idempotent no-op; any other move from a terminal
// status is a conflict. The status write and the approval message write
// stay non-atomic: if the second fails the caller gets a 500 and may
// retry the (idempotent) transition.
func (ac *ApplicationController) setStatus(c *gin.Context, withApprovalMessage bool) {
	id := c.Param("id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	newStatus, err := models.ParseApplicationStatus(body.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var app models.Application
	if err := ac.DB.First(&app, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if app.Status == newStatus {
		utils.RespondJSON(c, http.StatusOK, "done", app)
		return
	}

	if !app.Status.CanTransitionTo(newStatus) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("application %d is already %s", app.ID, app.Status))
		return
	}

	if err := ac.DB.Model(&app).Update("status", newStatus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	app.Status = newStatus

	if withApprovalMessage && newStatus == models.StatusApproved {
		msg := models.Message{
			SenderEmail:   app.BusinessEmail,
			ReceiverEmail: app.ApplicantEmail,
			Text:          fmt.Sprintf("I approved your application for %s.", app.JobTitle),
		}
		if err := ac.DB.Create(&msg).Error; err != nil {
			utils.ErrorLogger.Printf("approval message write failed for application %d: %v", app.ID, err)
			utils.RespondError(c, http.StatusInternalServerError,
				errors.New("application approved but chat message could not be sent"))
			return
		}
		utils.InfoLogger.Printf("Application %d approved, chat unlocked %s -> %s",
			app.ID, app.BusinessEmail, app.ApplicantEmail)
	}

	utils.RespondJSON(c, http.StatusOK, "done", app)
}
