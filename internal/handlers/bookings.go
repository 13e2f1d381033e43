package handlers

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kenjummy/booking-api/internal/apperr"
	"github.com/kenjummy/booking-api/internal/middleware"
	"github.com/kenjummy/booking-api/internal/models"
	"github.com/kenjummy/booking-api/internal/validation"
)

const defaultPageSize = 10

type BookingHandler struct {
	DB       *gorm.DB
	Log      zerolog.Logger
	Validate *validation.Validator
}

type CreateBookingReq struct {
	ServiceType string `json:"serviceType" validate:"required,oneof=charter intercity vip hire"`
	FullName    string `json:"fullName" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`

	Pickup         string   `json:"pickup"`
	Dropoff        string   `json:"dropoff"`
	Departure      string   `json:"departure"`
	Destination    string   `json:"destination"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Vehicle        string   `json:"vehicle"`
	Duration       string   `json:"duration"`
	SpecialRequest string   `json:"specialRequest"`
	StartDate      string   `json:"startDate"`
	StartTime      string   `json:"startTime"`
	EndDate        string   `json:"endDate"`
	EndTime        string   `json:"endTime"`
	Purpose        string   `json:"purpose"`
	TravelTime     string   `json:"travelTime"`
	Days           []string `json:"days"`

	NumberOfPassengers *int `json:"numberOfPassengers"`
}

// Create stamps the authenticated user as the booking owner. The body has no
// say over ownership.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req CreateBookingReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Check(req); err != nil {
		return err
	}

	booking := models.Booking{
		UserID:             user.ID,
		ServiceType:        models.ServiceType(req.ServiceType),
		Status:             models.BookingPending,
		FullName:           req.FullName,
		Phone:              req.Phone,
		Email:              req.Email,
		Pickup:             req.Pickup,
		Dropoff:            req.Dropoff,
		Departure:          req.Departure,
		Destination:        req.Destination,
		Date:               req.Date,
		Time:               req.Time,
		Vehicle:            req.Vehicle,
		Duration:           req.Duration,
		SpecialRequest:     req.SpecialRequest,
		StartDate:          req.StartDate,
		StartTime:          req.StartTime,
		EndDate:            req.EndDate,
		EndTime:            req.EndTime,
		Purpose:            req.Purpose,
		TravelTime:         req.TravelTime,
		NumberOfPassengers: req.NumberOfPassengers,
	}

	if len(req.Days) > 0 {
		days, err := json.Marshal(req.Days)
		if err != nil {
			return err
		}
		booking.Days = datatypes.JSON(days)
	}

	if err := h.DB.Create(&booking).Error; err != nil {
		h.Log.Error().Err(err).Str("email", user.Email).Msg("error creating booking")
		return err
	}

	h.Log.Info().Str("email", user.Email).Str("serviceType", req.ServiceType).Msg("new booking created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"booking": booking,
		},
	})
}

func (h *BookingHandler) MyBookings(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	page, pageSize, err := pageParams(c)
	if err != nil {
		h.Log.Warn().Str("page", c.Query("page")).Str("pageSize", c.Query("pageSize")).Msg("invalid pagination")
		return err
	}

	var total int64
	if err := h.DB.Model(&models.Booking{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		return err
	}

	var bookings []models.Booking
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"results":    len(bookings),
		"page":       page,
		"pageSize":   pageSize,
		"total":      total,
		"totalPages": int(math.Ceil(float64(total) / float64(pageSize))),
		"data": fiber.Map{
			"bookings": bookings,
		},
	})
}

func (h *BookingHandler) All(c *fiber.Ctx) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}

	var total int64
	if err := h.DB.Model(&models.Booking{}).Count(&total).Error; err != nil {
		return err
	}

	var bookings []models.Booking
	if err := h.DB.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"results":    len(bookings),
		"page":       page,
		"pageSize":   pageSize,
		"total":      total,
		"totalPages": int(math.Ceil(float64(total) / float64(pageSize))),
		"data": fiber.Map{
			"bookings": bookings,
		},
	})
}

type UpdateBookingStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateBookingStatusReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Check(req); err != nil {
		return err
	}

	var booking models.Booking
	if err := h.DB.First(&booking, "id = ?", c.Params("id")).Error; err != nil {
		return apperr.New(fiber.StatusNotFound, "No booking found with that ID")
	}

	booking.Status = models.BookingStatus(req.Status)
	if err := h.DB.Save(&booking).Error; err != nil {
		return err
	}

	h.Log.Info().Str("id", booking.ID.String()).Str("status", req.Status).Msg("booking status updated")
	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"booking": booking,
		},
	})
}

// pageParams parses pagination bounds; a supplied value outside the allowed
// range is rejected instead of silently clamped.
func pageParams(c *fiber.Ctx) (int, int, error) {
	page, pageSize := 1, defaultPageSize

	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, apperr.New(fiber.StatusBadRequest, "Invalid page number, must be greater than or equal to 1")
		}
		page = n
	}

	if v := c.Query("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return 0, 0, apperr.New(fiber.StatusBadRequest, "Invalid page size, must be between 1 and 100")
		}
		pageSize = n
	}

	return page, pageSize, nil
}
