package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"elegant-hotel/apperrors"
	"elegant-hotel/models"
)

// BookingService wraps *gorm.DB with the booking lifecycle rules.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// NightsBetween is the ceiling of the day-difference between check-out and
// check-in. Any positive interval counts as at least one night.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

var bookingTransitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
	models.BookingCancelled: {models.BookingPending},
	models.BookingCompleted: {models.BookingPending},
}

// CanTransition reports whether from→to is in the allowed table.
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ReopenTransition reports whether from→to reopens a terminal booking.
// Reopening is an administrative override, not part of the natural flow.
func ReopenTransition(from, to string) bool {
	return to == models.BookingPending &&
		(from == models.BookingCancelled || from == models.BookingCompleted)
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:8])
}

// lockRoom loads the room row under FOR UPDATE. Every writer that checks
// date conflicts must go through here first; the row lock is what serializes
// concurrent admissions per room.
func lockRoom(tx *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// conflictCount counts pending/confirmed bookings whose [check_in,check_out)
// interval overlaps the requested stay. Pass excludeID when re-admitting an
// existing booking.
func conflictCount(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	q := tx.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", roomID, models.ActiveStatuses()).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	err := q.Count(&n).Error
	return n, err
}

type CreateBookingInput struct {
	RoomID          uint
	UserID          uint
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
}

// Create admits or rejects a booking request. The room row is locked for
// the duration of the transaction so the overlap check and the insert are
// serialized per room; two concurrent requests for the same dates cannot
// both pass the check.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return nil, apperrors.ErrInvalidDateRange
	}
	if in.Guests < 1 {
		return nil, apperrors.ErrCapacityExceeded
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, in.RoomID)
		if err != nil {
			return err
		}

		// Maintenance rooms take no bookings. Occupied rooms still accept
		// future stays; the overlap check governs the dates.
		if room.Status == models.RoomMaintenance {
			return apperrors.ErrRoomUnavailable
		}
		if in.Guests > room.Capacity {
			return apperrors.ErrCapacityExceeded
		}

		conflicts, err := conflictCount(tx, room.ID, in.CheckIn, in.CheckOut, 0)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return apperrors.ErrRoomNotAvailableForDates
		}

		nights := NightsBetween(in.CheckIn, in.CheckOut)
		booking = models.Booking{
			ReferenceCode:   newReferenceCode(),
			RoomID:          room.ID,
			UserID:          in.UserID,
			CheckIn:         in.CheckIn,
			CheckOut:        in.CheckOut,
			Guests:          in.Guests,
			Nights:          nights,
			TotalPrice:      room.Price * float64(nights),
			Status:          models.BookingPending,
			SpecialRequests: in.SpecialRequests,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Room").Preload("User").First(&booking, booking.ID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Transition applies a status change. Admins may apply any edge in the
// table; a non-admin may only cancel their own pending booking. Reopening a
// terminal booking re-runs the overlap check so the no-overlap invariant
// survives administrative overrides.
func (s *BookingService) Transition(bookingID, actorID uint, isAdmin bool, newStatus string) (*models.Booking, error) {
	if !models.ValidBookingStatus(newStatus) {
		return nil, apperrors.ErrInvalidTransition
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBookingNotFound
			}
			return err
		}

		if !isAdmin {
			if booking.UserID != actorID {
				return apperrors.ErrForbidden
			}
			if booking.Status != models.BookingPending || newStatus != models.BookingCancelled {
				return apperrors.ErrForbidden
			}
		}

		if !CanTransition(booking.Status, newStatus) {
			return apperrors.ErrInvalidTransition
		}
		if ReopenTransition(booking.Status, newStatus) && !isAdmin {
			return apperrors.ErrForbidden
		}

		if ReopenTransition(booking.Status, newStatus) {
			// The room row lock mirrors Create; without it a concurrent
			// Create and a reopen never contend and both conflict counts
			// run before either insert is visible.
			if _, err := lockRoom(tx, booking.RoomID); err != nil {
				return err
			}
			conflicts, err := conflictCount(tx, booking.RoomID, booking.CheckIn, booking.CheckOut, booking.ID)
			if err != nil {
				return err
			}
			if conflicts > 0 {
				return apperrors.ErrRoomNotAvailableForDates
			}
		}

		if err := tx.Model(&booking).Update("status", newStatus).Error; err != nil {
			return err
		}
		booking.Status = newStatus

		return syncRoomOccupancy(tx, booking.RoomID)
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Room").Preload("User").First(&booking, booking.ID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// syncRoomOccupancy marks a room occupied while a confirmed booking spans
// today and available otherwise. Maintenance status is never touched here.
func syncRoomOccupancy(tx *gorm.DB, roomID uint) error {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		return err
	}
	if room.Status == models.RoomMaintenance {
		return nil
	}

	now := time.Now()
	var current int64
	if err := tx.Model(&models.Booking{}).
		Where("room_id = ? AND status = ?", roomID, models.BookingConfirmed).
		Where("check_in <= ? AND check_out > ?", now, now).
		Count(&current).Error; err != nil {
		return err
	}

	status := models.RoomAvailable
	if current > 0 {
		status = models.RoomOccupied
	}
	if status == room.Status {
		return nil
	}
	return tx.Model(&room).Update("status", status).Error
}

type BookingFilter struct {
	Status    string
	RoomID    uint
	UserID    uint
	StartDate *time.Time
	EndDate   *time.Time
}

// List returns bookings newest-first with room and user preloaded.
func (s *BookingService) List(f BookingFilter) ([]models.Booking, error) {
	q := s.DB.Preload("Room").Preload("User")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.StartDate != nil {
		q = q.Where("check_in >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("check_out <= ?", *f.EndDate)
	}

	var list []models.Booking
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *BookingService) Get(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").Preload("User").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// Delete removes a booking unconditionally. Admin-only; owners cancel
// instead of deleting.
func (s *BookingService) Delete(bookingID uint) error {
	res := s.DB.Delete(&models.Booking{}, bookingID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBookingNotFound
	}
	return nil
}

// Recent returns the latest bookings for the dashboard.
func (s *BookingService) Recent(limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 5
	}
	var list []models.Booking
	if err := s.DB.Preload("Room").Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
