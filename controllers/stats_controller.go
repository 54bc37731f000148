package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/croftbar/blogadmin/models"
	"github.com/croftbar/blogadmin/utils"
)

// StatsController exposes entity counts for the admin front page.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a StatsController.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns user, post and published-post counts.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var users, posts, published int64

	if err := s.db.Model(&models.User{}).Count(&users).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to count users")
		return
	}
	if err := s.db.Model(&models.Post{}).Count(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to count posts")
		return
	}
	if err := s.db.Model(&models.Post{}).Where("published = ?", true).Count(&published).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to count published posts")
		return
	}

	utils.JSON(ctx, http.StatusOK, gin.H{
		"users":     users,
		"posts":     posts,
		"published": published,
	})
}
