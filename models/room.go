package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CategoryBasic   = "Basic"
	CategoryPremium = "Premium"
	CategorySuite   = "Suite"
)

const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
)

type Room struct {
	gorm.Model

	Number   string `json:"number" gorm:"uniqueIndex;size:50"`
	Category string `json:"category" gorm:"size:32"`

	Price       float64 `json:"price"`
	Description string  `json:"description" gorm:"type:text"`

	// JSON arrays of amenity labels and image URLs, in display order
	Amenities datatypes.JSON `json:"amenities" gorm:"column:amenities"`
	Images    datatypes.JSON `json:"images" gorm:"column:images"`

	Capacity int    `json:"capacity"`
	Status   string `json:"status" gorm:"size:32;default:available"`
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryBasic, CategoryPremium, CategorySuite:
		return true
	}
	return false
}

func ValidRoomStatus(s string) bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}
