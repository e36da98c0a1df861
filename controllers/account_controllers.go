package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountController struct {
	DB *gorm.DB
}

func NewAccountController(db *gorm.DB) *AccountController {
	return &AccountController{DB: db}
}

// Signup registers a worker or business account. The role string is parsed
// once here; nothing downstream re-checks it.
func (ac *AccountController) Signup(c *gin.Context) {
	type request struct {
		Name       string `json:"name" binding:"required"`
		Contact    string `json:"contact"`
		Location   string `json:"location"`
		Email      string `json:"email" binding:"required,email"`
		Password   string `json:"password" binding:"required"`
		Role       string `json:"role" binding:"required"`
		ProfilePic string `json:"profilePic"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	account := models.Account{
		Name:       req.Name,
		Contact:    req.Contact,
		Location:   req.Location,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       role,
		ProfilePic: req.ProfilePic,
	}

	if err := ac.DB.Create(&account).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New account registered: %s (role=%s)", account.Email, account.Role)

	utils.RespondJSON(c, http.StatusCreated, "Success", gin.H{
		"account_id": account.ID,
	})
}

// Login checks credentials for the given role and hands back the account
// with a JWT.
func (ac *AccountController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role, err := models.ParseRole(input.Role)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var account models.Account
	if err := ac.DB.Where("email = ? AND role = ?", input.Email, role).First(&account).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid login"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid login"))
		return
	}

	token, err := utils.GenerateToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"user":  account,
		"token": token,
	})
}

// Logout revokes the presented token for the rest of its validity window.
func (ac *AccountController) Logout(c *gin.Context) {
	tokenVal, exists := c.Get("token")
	token, _ := tokenVal.(string)
	if !exists || token == "" {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("token not found"))
		return
	}

	utils.BlacklistToken(token)
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// UpdateProfile updates the caller's own account record, matched by email
// and role.
func (ac *AccountController) UpdateProfile(c *gin.Context) {
	var req struct {
		Name       string `json:"name"`
		Contact    string `json:"contact"`
		Location   string `json:"location"`
		Email      string `json:"email" binding:"required"`
		Role       string `json:"role" binding:"required"`
		ProfilePic string `json:"profilePic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var account models.Account
	if err := ac.DB.Where("email = ? AND role = ?", req.Email, role).First(&account).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"contact":     req.Contact,
		"location":    req.Location,
		"profile_pic": req.ProfilePic,
	}
	if err := ac.DB.Model(&account).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile updated", gin.H{"user": account})
}

// GetUserActivity aggregates everything the account owns across the three
// listing types. The three queries run back to back with no snapshot
// isolation; social fields are omitted.
func (ac *AccountController) GetUserActivity(c *gin.Context) {
	email := c.Param("email")

	var jobs []models.Job
	if err := ac.DB.Where("owner_email = ?", email).Find(&jobs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var profiles []models.WorkerProfile
	if err := ac.DB.Where("email = ?", email).Find(&profiles).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var instant []models.InstantService
	if err := ac.DB.Where("owner_email = ?", email).Find(&instant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	posts := make([]interface{}, 0, len(jobs)+len(profiles))
	for _, j := range jobs {
		posts = append(posts, j)
	}
	for _, p := range profiles {
		posts = append(posts, p)
	}

	utils.RespondJSON(c, http.StatusOK, "User activity", gin.H{
		"posts":   posts,
		"instant": instant,
	})
}
