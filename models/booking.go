package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

type Booking struct {
	gorm.Model

	ReferenceCode string `json:"reference_code" gorm:"column:reference_code;size:64;uniqueIndex"`

	RoomID uint `json:"room_id" gorm:"index;column:room_id"`
	UserID uint `json:"user_id" gorm:"index;column:user_id"`

	CheckIn  time.Time `json:"check_in" gorm:"column:check_in"`
	CheckOut time.Time `json:"check_out" gorm:"column:check_out"`

	Guests     int     `json:"guests" gorm:"default:1"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price" gorm:"column:total_price"`

	Status string `json:"status" gorm:"size:32;index;default:pending"`

	SpecialRequests string `json:"special_requests,omitempty" gorm:"type:text"`

	Room Room `json:"room,omitempty" gorm:"foreignKey:RoomID;references:ID"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// ActiveStatuses are the statuses that block a room's dates.
func ActiveStatuses() []string {
	return []string{BookingPending, BookingConfirmed}
}
