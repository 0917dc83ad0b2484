package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetUsers returns every user except the caller. The password hash is
// stripped by the repository projection before the records leave the
// store.
func GetUsers(c *gin.Context) {
	callerID := c.GetString("userID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := userRepo.ListExcluding(ctx, callerID)
	if err != nil {
		log.Printf("[GetUsers] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Database error"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func Like(c *gin.Context) {
	var req struct {
		LikedID string `json:"likedID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "likedID required"})
		return
	}

	callerID := c.GetString("userID")
	if req.LikedID == callerID {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Cannot like self"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userRepo.AddToLiked(ctx, callerID, req.LikedID); err != nil {
		log.Printf("[Like] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func Dislike(c *gin.Context) {
	var req struct {
		DislikedID string `json:"dislikedID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "dislikedID required"})
		return
	}

	callerID := c.GetString("userID")
	if req.DislikedID == callerID {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Cannot dislike self"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userRepo.AddToDisliked(ctx, callerID, req.DislikedID); err != nil {
		log.Printf("[Dislike] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
