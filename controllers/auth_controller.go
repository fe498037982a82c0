package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kotibus/middleware"
	"kotibus/models"
	"kotibus/storage"
	"kotibus/utils"
)

type AuthController struct {
	Users storage.UserStore
	Carts storage.CartStore
}

func NewAuthController(users storage.UserStore, carts storage.CartStore) *AuthController {
	return &AuthController{Users: users, Carts: carts}
}

// Register godoc
// @Summary Register new account
// @Description Create an account and sign in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(400, gin.H{"success": false, "message": "Passwords do not match"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	user, err := ctrl.Users.Create(strings.TrimSpace(req.Name), req.Email, hash)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			c.JSON(400, gin.H{"success": false, "message": "Email already registered. Please sign in."})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	session := models.Session{ID: user.ID, Name: user.Name, Email: user.Email}
	token, _ := utils.GenerateToken(session)

	c.JSON(201, gin.H{
		"success": true,
		"message": "Account created successfully",
		"data":    models.LoginResponse{Token: token, Session: session},
	})
}

// Login godoc
// @Summary Sign in
// @Description Sign in with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.Users.FindByEmail(req.Email)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	ok, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	session := models.Session{ID: user.ID, Name: user.Name, Email: user.Email}
	token, _ := utils.GenerateToken(session)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Signed in successfully",
		"data":    models.LoginResponse{Token: token, Session: session},
	})
}

// Guest godoc
// @Summary Continue as guest
// @Description Create a guest session with a generated identifier
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/guest [post]
func (ctrl *AuthController) Guest(c *gin.Context) {
	session := models.Session{
		ID:      "guest_" + uuid.NewString(),
		Name:    "Guest",
		IsGuest: true,
	}
	token, _ := utils.GenerateToken(session)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Welcome! Browsing as guest",
		"data":    models.LoginResponse{Token: token, Session: session},
	})
}

// Logout godoc
// @Summary Sign out
// @Description Clear the session's server-side cart binding
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	if err := ctrl.Carts.Clear(session.ID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Signed out"})
}

// GetProfile godoc
// @Summary Get session identity
// @Description Return the identity of the current session
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Profile retrieved",
		"data":    session,
	})
}
