package services

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"elegant-hotel/apperrors"
	"elegant-hotel/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomInput struct {
	Number      string
	Category    string
	Price       float64
	Description string
	Amenities   datatypes.JSON
	Images      datatypes.JSON
	Capacity    int
	Status      string
}

// decodeStringList reads a JSON column holding an array of strings. A nil
// column decodes to an empty list; malformed JSON reports ok=false.
func decodeStringList(raw datatypes.JSON) (list []string, ok bool) {
	if len(raw) == 0 {
		return nil, true
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

func validImageURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateRoomInput returns the field-level problems with a room payload.
func ValidateRoomInput(in RoomInput) []string {
	var details []string
	if strings.TrimSpace(in.Number) == "" {
		details = append(details, "room number is required")
	}
	if !models.ValidCategory(in.Category) {
		details = append(details, "category must be one of Basic, Premium, Suite")
	}
	if in.Price < 0 {
		details = append(details, "price must not be negative")
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		details = append(details, "description must be at least 10 characters")
	}
	if in.Capacity < 1 {
		details = append(details, "capacity must be at least 1")
	}

	amenities, ok := decodeStringList(in.Amenities)
	switch {
	case !ok:
		details = append(details, "amenities must be a JSON array of strings")
	case len(amenities) < 1:
		details = append(details, "at least one amenity is required")
	}

	images, ok := decodeStringList(in.Images)
	switch {
	case !ok:
		details = append(details, "images must be a JSON array of strings")
	case len(images) < 1:
		details = append(details, "at least one image is required")
	default:
		for _, img := range images {
			if !validImageURL(img) {
				details = append(details, "images must be valid http(s) URLs")
				break
			}
		}
	}

	if in.Status != "" && !models.ValidRoomStatus(in.Status) {
		details = append(details, "status must be one of available, occupied, maintenance")
	}
	return details
}

func (s *RoomService) Create(in RoomInput) (*models.Room, error) {
	number := strings.TrimSpace(in.Number)

	var count int64
	if err := s.DB.Model(&models.Room{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.ErrRoomNumberTaken
	}

	status := in.Status
	if status == "" {
		status = models.RoomAvailable
	}

	room := models.Room{
		Number:      number,
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
		Amenities:   in.Amenities,
		Images:      in.Images,
		Capacity:    in.Capacity,
		Status:      status,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(roomID uint, in RoomInput) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}

	number := strings.TrimSpace(in.Number)
	if number != room.Number {
		var count int64
		if err := s.DB.Model(&models.Room{}).
			Where("number = ? AND id <> ?", number, roomID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperrors.ErrRoomNumberTaken
		}
	}

	room.Number = number
	room.Category = in.Category
	room.Price = in.Price
	room.Description = in.Description
	room.Amenities = in.Amenities
	room.Images = in.Images
	room.Capacity = in.Capacity
	if in.Status != "" {
		room.Status = in.Status
	}

	if err := s.DB.Save(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Delete refuses while any booking still references the room, regardless of
// booking status.
func (s *RoomService) Delete(roomID uint) error {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoomNotFound
		}
		return err
	}

	var refs int64
	if err := s.DB.Model(&models.Booking{}).Where("room_id = ?", roomID).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return apperrors.ErrRoomHasBookings
	}

	return s.DB.Delete(&room).Error
}

func (s *RoomService) Get(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

type RoomFilter struct {
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	Capacity  int
	StartDate *time.Time
	EndDate   *time.Time
}

// List applies catalog filters. When a date window is given, rooms with an
// overlapping pending or confirmed booking are excluded.
func (s *RoomService) List(f RoomFilter) ([]models.Room, error) {
	q := s.DB.Model(&models.Room{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Capacity > 0 {
		q = q.Where("capacity >= ?", f.Capacity)
	}
	if f.StartDate != nil && f.EndDate != nil {
		sub := s.DB.Model(&models.Booking{}).
			Select("room_id").
			Where("status IN ?", models.ActiveStatuses()).
			Where("check_in < ? AND check_out > ?", *f.EndDate, *f.StartDate)
		q = q.Where("id NOT IN (?)", sub)
	}

	var rooms []models.Room
	if err := q.Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
