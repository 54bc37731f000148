package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/croftbar/blogadmin/models"
	"github.com/croftbar/blogadmin/utils"
)

// PostController manages CRUD operations for posts.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// ListPosts returns every post including its author.
func (p *PostController) ListPosts(ctx *gin.Context) {
	posts := []models.Post{}
	if err := p.db.Preload("Author").Order("id").Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to retrieve posts")
		return
	}
	utils.JSON(ctx, http.StatusOK, posts)
}

// CreatePost creates a post for an existing author. Validation order:
// title, authorId, author existence.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Title     *string `json:"title"`
		Content   *string `json:"content"`
		AuthorID  *uint   `json:"authorId"`
		Published *bool   `json:"published"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	var title string
	if req.Title != nil {
		title = utils.Sanitize(strings.TrimSpace(*req.Title))
	}
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, "title is required")
		return
	}
	if req.AuthorID == nil || *req.AuthorID == 0 {
		utils.Error(ctx, http.StatusBadRequest, "authorId is required")
		return
	}

	var author models.User
	if err := p.db.First(&author, *req.AuthorID).Error; err != nil {
		if models.IsNotFound(err) {
			utils.Error(ctx, http.StatusNotFound, "author does not exist")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load author")
		return
	}

	post := models.Post{
		Title:    title,
		AuthorID: author.ID,
	}
	if req.Content != nil {
		content := utils.Sanitize(*req.Content)
		post.Content = &content
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := p.db.Create(&post).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create post")
		return
	}

	post.Author = &author
	utils.Created(ctx, post)
}

// GetPost returns a single post with its author.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, "post not found")
		return
	}

	var post models.Post
	if err := p.db.Preload("Author").First(&post, id).Error; err != nil {
		if models.IsNotFound(err) {
			utils.Error(ctx, http.StatusNotFound, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}
	utils.JSON(ctx, http.StatusOK, post)
}

// UpdatePost applies a partial update over title, content, published and
// authorId. Changing the author is validated the same way create is.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, "post not found")
		return
	}

	var req struct {
		Title     *string `json:"title"`
		Content   *string `json:"content"`
		Published *bool   `json:"published"`
		AuthorID  *uint   `json:"authorId"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if models.IsNotFound(err) {
			utils.Error(ctx, http.StatusNotFound, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := utils.Sanitize(strings.TrimSpace(*req.Title))
		if title == "" {
			utils.Error(ctx, http.StatusBadRequest, "title cannot be empty")
			return
		}
		updates["title"] = title
	}
	if req.Content != nil {
		updates["content"] = utils.Sanitize(*req.Content)
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}
	if req.AuthorID != nil {
		var author models.User
		if err := p.db.First(&author, *req.AuthorID).Error; err != nil {
			if models.IsNotFound(err) {
				utils.Error(ctx, http.StatusNotFound, "author does not exist")
				return
			}
			utils.Error(ctx, http.StatusInternalServerError, "failed to load author")
			return
		}
		updates["author_id"] = author.ID
	}

	if len(updates) > 0 {
		if err := p.db.Model(&post).Updates(updates).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to update post")
			return
		}
	}

	if err := p.db.First(&post, id).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}
	utils.JSON(ctx, http.StatusOK, post)
}

// DeletePost removes a post.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, "post not found")
		return
	}

	res := p.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete post")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, "post not found")
		return
	}

	utils.Message(ctx, "post deleted successfully")
}
