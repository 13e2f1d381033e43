package handlers

import (
	"errors"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kenjummy/booking-api/internal/apperr"
	"github.com/kenjummy/booking-api/internal/middleware"
	"github.com/kenjummy/booking-api/internal/models"
	"github.com/kenjummy/booking-api/internal/validation"
)

type UserHandler struct {
	DB       *gorm.DB
	Log      zerolog.Logger
	Validate *validation.Validator
}

type EditUserReq struct {
	FullName string `json:"fullName" validate:"omitempty,min=3,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
}

// UpdateDetail lets a user edit their own profile. Only supplied fields
// overwrite; everything else keeps its prior value.
func (h *UserHandler) UpdateDetail(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	id := c.Params("id")

	if current.ID.String() != id {
		return apperr.New(fiber.StatusForbidden, "You are not authorized to perform this action")
	}

	var req EditUserReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Check(req); err != nil {
		return err
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		return apperr.New(fiber.StatusNotFound, "User not found")
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := h.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.New(fiber.StatusBadRequest, "This email address is already in use.")
		}
		return err
	}

	h.Log.Info().Str("email", user.Email).Msg("user details updated")
	return c.JSON(fiber.Map{
		"message": "User details updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := h.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return err
	}

	var users []models.User
	if err := h.DB.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"results":    len(users),
		"total":      total,
		"page":       page,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
		"data": fiber.Map{
			"users": users,
		},
	})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	id := c.Params("id")

	// even an authorized actor may not delete their own account
	if current.ID.String() == id {
		return apperr.New(fiber.StatusBadRequest, "You cannot delete your own account.")
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		return apperr.New(fiber.StatusNotFound, "No user found with that ID")
	}

	if err := h.DB.Delete(&user).Error; err != nil {
		return err
	}

	h.Log.Info().Str("email", user.Email).Str("by", current.Email).Msg("user deleted")
	return c.SendStatus(fiber.StatusNoContent)
}

type UpdateUserStatusReq struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateUserStatusReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Check(req); err != nil {
		return err
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return apperr.New(fiber.StatusNotFound, "No user found with that ID")
	}

	user.IsActive = *req.IsActive
	if err := h.DB.Save(&user).Error; err != nil {
		return err
	}

	h.Log.Info().Str("email", user.Email).Bool("isActive", user.IsActive).Msg("user status updated")
	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"user": user,
		},
	})
}

func (h *UserHandler) Promote(c *fiber.Ctx) error {
	var user models.User
	if err := h.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return apperr.New(fiber.StatusNotFound, "No user found with that ID")
	}

	if user.Role == models.RoleSuperadmin {
		return apperr.New(fiber.StatusBadRequest, "Cannot change role of a superadmin")
	}

	user.Role = models.RoleAdmin
	if err := h.DB.Save(&user).Error; err != nil {
		return err
	}

	h.Log.Info().Str("email", user.Email).Msg("user promoted to admin")
	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"user": user,
		},
	})
}

func (h *UserHandler) Demote(c *fiber.Ctx) error {
	var user models.User
	if err := h.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return apperr.New(fiber.StatusNotFound, "No user found with that ID")
	}

	if user.Role == models.RoleSuperadmin {
		return apperr.New(fiber.StatusBadRequest, "Cannot change role of a superadmin")
	}
	if user.Role == models.RoleUser {
		return apperr.New(fiber.StatusBadRequest, "User is already a standard user")
	}

	user.Role = models.RoleUser
	if err := h.DB.Save(&user).Error; err != nil {
		return err
	}

	h.Log.Info().Str("email", user.Email).Msg("admin demoted to user")
	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"user": user,
		},
	})
}
