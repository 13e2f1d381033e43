package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kenjummy/booking-api/internal/apperr"
	"github.com/kenjummy/booking-api/internal/models"
	"github.com/kenjummy/booking-api/internal/utils"
	"github.com/kenjummy/booking-api/internal/validation"
)

type AuthHandler struct {
	DB           *gorm.DB
	Log          zerolog.Logger
	Validate     *validation.Validator
	JWTSecret    string
	AdminSecret  string
	CookieSecure bool
}

type SignupReq struct {
	FullName    string `json:"fullName" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10"`
	Password    string `json:"password" validate:"required,min=8"`
	AdminSecret string `json:"adminSecret"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Check(req); err != nil {
		return err
	}

	role := models.RoleUser
	if req.AdminSecret != "" && h.AdminSecret != "" && req.AdminSecret == h.AdminSecret {
		role = models.RoleAdmin
	}

	// hashing is an explicit step here, not a model hook
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hash,
		Role:     role,
		IsActive: true,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.New(fiber.StatusBadRequest, "This email address is already in use.")
		}
		return err
	}

	h.Log.Info().Str("email", user.Email).Str("id", user.ID.String()).Msg("new user signed up")
	return h.sendToken(c, &user, fiber.StatusCreated)
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Check(req); err != nil {
		return err
	}

	// same rejection for a missing user and a wrong password
	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return apperr.New(fiber.StatusUnauthorized, "Incorrect email or password")
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		return apperr.New(fiber.StatusUnauthorized, "Incorrect email or password")
	}

	h.Log.Info().Str("email", user.Email).Msg("user logged in")
	return h.sendToken(c, &user, fiber.StatusOK)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.CookieSecure,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Logged out",
	})
}

// sendToken issues the JWT, attaches it as an HTTP-only cookie and returns it
// in the body alongside the user (password is never serialized).
func (h *AuthHandler) sendToken(c *fiber.Ctx, user *models.User, status int) error {
	token, err := utils.SignJWT(h.JWTSecret, user.ID.String())
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(utils.TokenTTL),
		HTTPOnly: true,
		Secure:   h.CookieSecure,
		SameSite: "Lax",
	})

	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"token":  token,
		"data": fiber.Map{
			"user": user,
		},
	})
}
