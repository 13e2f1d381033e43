package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenjummy/booking-api/internal/apperr"
)

type signupReq struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Password string `json:"password" validate:"required,min=8"`
}

type editUserReq struct {
	FullName string `json:"fullName" validate:"omitempty,min=3,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
}

type bookingReq struct {
	ServiceType string `json:"serviceType" validate:"required,oneof=charter intercity vip hire"`
	FullName    string `json:"fullName" validate:"required"`
}

func checkErr(t *testing.T, err error) *apperr.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, 400, appErr.Code)
	return appErr
}

func TestCheckPassesValidInput(t *testing.T) {
	v := New()
	err := v.Check(signupReq{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "0812345678",
		Password: "longenough1",
	})
	assert.NoError(t, err)
}

func TestCheckCollectsAllMessages(t *testing.T) {
	v := New()
	err := v.Check(signupReq{
		FullName: "J",
		Email:    "nope",
		Phone:    "123",
		Password: "short",
	})

	appErr := checkErr(t, err)
	assert.Contains(t, appErr.Message, "Invalid input: ")
	assert.Contains(t, appErr.Message, "Full name must be at least 2 characters")
	assert.Contains(t, appErr.Message, "Invalid email address")
	assert.Contains(t, appErr.Message, "Phone number must be at least 10 digits")
	assert.Contains(t, appErr.Message, "Password must be at least 8 characters long")
}

func TestCheckRequiredMessages(t *testing.T) {
	v := New()
	err := v.Check(signupReq{})

	appErr := checkErr(t, err)
	assert.Contains(t, appErr.Message, "Full name is required")
	assert.Contains(t, appErr.Message, "Email is required")
	assert.Contains(t, appErr.Message, "Phone number is required")
	assert.Contains(t, appErr.Message, "Password is required")
}

func TestCheckEditUserBounds(t *testing.T) {
	v := New()

	// optional fields: empty input is fine
	assert.NoError(t, v.Check(editUserReq{}))

	err := v.Check(editUserReq{FullName: "ab"})
	appErr := checkErr(t, err)
	assert.Contains(t, appErr.Message, "Full name must be between 3 and 100 characters")

	err = v.Check(editUserReq{Phone: "not-a-phone"})
	appErr = checkErr(t, err)
	assert.Contains(t, appErr.Message, "Invalid phone number")
}

func TestCheckServiceTypeEnum(t *testing.T) {
	v := New()
	err := v.Check(bookingReq{ServiceType: "submarine", FullName: "Jane"})

	appErr := checkErr(t, err)
	assert.Contains(t, appErr.Message, "Invalid service type. Must be one of: charter, intercity, vip, hire.")

	assert.NoError(t, v.Check(bookingReq{ServiceType: "vip", FullName: "Jane"}))
}
