package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/croftbar/blogadmin/models"
	"github.com/croftbar/blogadmin/utils"
)

// UserController manages CRUD operations for users.
type UserController struct {
	db *gorm.DB
}

// NewUserController creates a new UserController instance.
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// ListUsers returns every user with their posts included.
func (u *UserController) ListUsers(ctx *gin.Context) {
	users := []models.User{}
	if err := u.db.Preload("Posts").Order("id").Find(&users).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to retrieve users")
		return
	}
	for i := range users {
		if users[i].Posts == nil {
			users[i].Posts = []models.Post{}
		}
	}
	utils.JSON(ctx, http.StatusOK, users)
}

// CreateUser registers a new user. Email uniqueness is enforced by the
// database index; a violation maps to 409 rather than being pre-checked,
// so two concurrent creates cannot both slip past a read.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req struct {
		Email string  `json:"email" binding:"required"`
		Name  *string `json:"name"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "email is required")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		utils.Error(ctx, http.StatusBadRequest, "email is required")
		return
	}

	user := models.User{
		Email: email,
		Name:  req.Name,
	}

	if err := u.db.Create(&user).Error; err != nil {
		if models.IsDuplicateKey(err) {
			utils.Error(ctx, http.StatusConflict, "email already exists")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to create user")
		return
	}

	user.Posts = []models.Post{}
	utils.Created(ctx, user)
}

// GetUser returns one user with their posts.
func (u *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, "user not found")
		return
	}

	var user models.User
	if err := u.db.Preload("Posts").First(&user, id).Error; err != nil {
		if models.IsNotFound(err) {
			utils.Error(ctx, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}
	if user.Posts == nil {
		user.Posts = []models.Post{}
	}
	utils.JSON(ctx, http.StatusOK, user)
}

// UpdateUser applies a partial update; only fields present in the body change.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, "user not found")
		return
	}

	var req struct {
		Email *string `json:"email"`
		Name  *string `json:"name"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	var user models.User
	if err := u.db.First(&user, id).Error; err != nil {
		if models.IsNotFound(err) {
			utils.Error(ctx, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" {
			utils.Error(ctx, http.StatusBadRequest, "email cannot be empty")
			return
		}
		updates["email"] = email
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if len(updates) > 0 {
		if err := u.db.Model(&user).Updates(updates).Error; err != nil {
			if models.IsDuplicateKey(err) {
				utils.Error(ctx, http.StatusConflict, "email already exists")
				return
			}
			utils.Error(ctx, http.StatusInternalServerError, "failed to update user")
			return
		}
	}

	if err := u.db.First(&user, id).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}
	utils.JSON(ctx, http.StatusOK, user)
}

// DeleteUser removes a user and every post they authored as one atomic
// unit; a concurrent read never sees the user gone with posts remaining.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, "user not found")
		return
	}

	err := u.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if models.IsNotFound(err) {
			utils.Error(ctx, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete user")
		return
	}

	utils.Message(ctx, "user deleted successfully")
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(ctx.Param("id")), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
