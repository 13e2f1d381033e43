package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceCharter   ServiceType = "charter"
	ServiceIntercity ServiceType = "intercity"
	ServiceVIP       ServiceType = "vip"
	ServiceHire      ServiceType = "hire"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User   *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`

	ServiceType ServiceType   `gorm:"type:varchar(20);not null" json:"serviceType"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	FullName string `gorm:"not null" json:"fullName"`
	Phone    string `gorm:"not null" json:"phone"`
	Email    string `gorm:"not null" json:"email"`

	Pickup         string `json:"pickup,omitempty"`
	Dropoff        string `json:"dropoff,omitempty"`
	Departure      string `json:"departure,omitempty"`
	Destination    string `json:"destination,omitempty"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	Vehicle        string `json:"vehicle,omitempty"`
	Duration       string `json:"duration,omitempty"`
	SpecialRequest string `json:"specialRequest,omitempty"`
	StartDate      string `json:"startDate,omitempty"`
	StartTime      string `json:"startTime,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	EndTime        string `json:"endTime,omitempty"`
	Purpose        string `json:"purpose,omitempty"`
	TravelTime     string `json:"travelTime,omitempty"`

	NumberOfPassengers *int           `json:"numberOfPassengers,omitempty"`
	Days               datatypes.JSON `json:"days,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
