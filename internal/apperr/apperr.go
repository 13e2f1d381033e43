package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AppError is an operational error with a known HTTP status. Anything else
// reaching the error handler is treated as a 500 and hidden from the client.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string { return e.Message }

func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Handler shapes every error into the {status, message} JSON body.
// "fail" for 4xx, "error" for 5xx.
func Handler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Something went very wrong!"

		var appErr *AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			code = appErr.Code
			message = appErr.Message
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		}

		status := "error"
		if code >= 400 && code < 500 {
			status = "fail"
		}

		if code >= 500 {
			logger.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		return c.Status(code).JSON(fiber.Map{
			"status":  status,
			"message": message,
		})
	}
}
