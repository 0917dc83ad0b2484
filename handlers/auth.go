package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"dateme/auth"
	"dateme/models"
	"dateme/repository"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Name      string   `json:"name"`
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Age       int      `json:"age"`
	Bio       string   `json:"bio"`
	Image     string   `json:"image"`
	Interests []string `json:"interests"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "All fields required"})
		return
	}

	if req.Name == "" || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "All fields required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Check if username already exists
	_, err := userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Username exists"})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Database error"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Failed to hash password"})
		return
	}

	userID, err := userRepo.NextUserID(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Database error"})
		return
	}

	interests := req.Interests
	if interests == nil {
		interests = []string{}
	}

	user := models.User{
		UserID:        userID,
		Name:          req.Name,
		Username:      req.Username,
		Password:      hashed,
		Age:           req.Age,
		Bio:           req.Bio,
		Image:         req.Image,
		Interests:     interests,
		LikedUsers:    []string{},
		DislikedUsers: []string{},
	}

	if err := userRepo.Insert(ctx, &user); err != nil {
		// The unique index catches a registration that raced past the
		// earlier lookup.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Username exists"})
			return
		}
		log.Printf("[Signup] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "userID": userID})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Invalid credentials"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Unknown username and wrong password answer identically so login
	// cannot be used to probe which usernames exist.
	user, err := userRepo.FindByUsername(ctx, req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Database error"})
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Invalid credentials"})
		return
	}

	token, err := tokens.Issue(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"userID":  user.UserID,
		"name":    user.Name,
	})
}
