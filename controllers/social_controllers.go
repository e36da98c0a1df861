package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/utils"
	"gorm.io/gorm"
)

// SocialController handles like and comment actions on listings that carry
// social fields (jobs and worker profiles).
type SocialController struct {
	DB *gorm.DB
}

func NewSocialController(db *gorm.DB) *SocialController {
	return &SocialController{DB: db}
}

// post table names as stored in the polymorphic post_type column.
const (
	postTypeJob    = "jobs"
	postTypeWorker = "worker_profiles"
)

func (sc *SocialController) postExists(postType string, id uint) (bool, error) {
	var count int64
	var err error
	switch postType {
	case postTypeJob:
		err = sc.DB.Model(&models.Job{}).Where("id = ?", id).Count(&count).Error
	case postTypeWorker:
		err = sc.DB.Model(&models.WorkerProfile{}).Where("id = ?", id).Count(&count).Error
	default:
		return false, fmt.Errorf("unknown post type %q", postType)
	}
	return count > 0, err
}

func (sc *SocialController) likePost(c *gin.Context, postType string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid post id"))
		return
	}

	emailVal, exists := c.Get("email")
	email, _ := emailVal.(string)
	if !exists || email == "" {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("email not found in token"))
		return
	}

	found, err := sc.postExists(postType, uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New("post not found"))
		return
	}

	// Repeat likes from the same email collapse into the existing row.
	var existing models.Like
	err = sc.DB.Where("post_type = ? AND post_id = ? AND user_email = ?", postType, id, email).
		First(&existing).Error
	if err == nil {
		utils.RespondJSON(c, http.StatusOK, "Already liked", existing)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	like := models.Like{
		PostType:  postType,
		PostID:    uint(id),
		UserEmail: email,
	}
	if err := sc.DB.Create(&like).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Liked", like)
}

func (sc *SocialController) commentPost(c *gin.Context, postType string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid post id"))
		return
	}

	var req struct {
		UserName string `json:"userName" binding:"required"`
		Text     string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	found, err := sc.postExists(postType, uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New("post not found"))
		return
	}

	comment := models.Comment{
		PostType: postType,
		PostID:   uint(id),
		UserName: req.UserName,
		Text:     req.Text,
	}
	if err := sc.DB.Create(&comment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Comment added", comment)
}

func (sc *SocialController) LikeJob(c *gin.Context)       { sc.likePost(c, postTypeJob) }
func (sc *SocialController) CommentJob(c *gin.Context)    { sc.commentPost(c, postTypeJob) }
func (sc *SocialController) LikeWorker(c *gin.Context)    { sc.likePost(c, postTypeWorker) }
func (sc *SocialController) CommentWorker(c *gin.Context) { sc.commentPost(c, postTypeWorker) }
