package services

import (
	"time"

	"gorm.io/gorm"

	"elegant-hotel/models"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type DashboardStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalRooms    int64 `json:"total_rooms"`
	TotalBookings int64 `json:"total_bookings"`

	PendingBookings   int64 `json:"pending_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`

	TotalRevenue        float64 `json:"total_revenue"`
	AverageStayDuration float64 `json:"average_stay_duration"`

	// Share of all rooms (maintenance included) with a confirmed booking
	// spanning today.
	OccupancyRate float64 `json:"occupancy_rate"`

	AvailableRooms       int64            `json:"available_rooms"`
	AveragePrice         float64          `json:"average_price"`
	CategoryDistribution map[string]int64 `json:"category_distribution"`
}

// Dashboard recomputes every aggregate per request; nothing is cached.
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{
		CategoryDistribution: map[string]int64{},
	}

	if err := s.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}

	statusCounts := map[string]*int64{
		models.BookingPending:   &stats.PendingBookings,
		models.BookingConfirmed: &stats.ConfirmedBookings,
		models.BookingCancelled: &stats.CancelledBookings,
		models.BookingCompleted: &stats.CompletedBookings,
	}
	for status, dst := range statusCounts {
		if err := s.DB.Model(&models.Booking{}).
			Where("status = ?", status).
			Count(dst).Error; err != nil {
			return nil, err
		}
	}

	if err := s.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingCompleted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingCompleted).
		Select("COALESCE(AVG(DATEDIFF(check_out, check_in)), 0)").
		Scan(&stats.AverageStayDuration).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	var occupied int64
	if err := s.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingConfirmed).
		Where("check_in <= ? AND check_out > ?", now, now).
		Distinct("room_id").
		Count(&occupied).Error; err != nil {
		return nil, err
	}
	if stats.TotalRooms > 0 {
		stats.OccupancyRate = float64(occupied) / float64(stats.TotalRooms)
	}

	if err := s.DB.Model(&models.Room{}).
		Where("status = ?", models.RoomAvailable).
		Count(&stats.AvailableRooms).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Room{}).
		Select("COALESCE(AVG(price), 0)").
		Scan(&stats.AveragePrice).Error; err != nil {
		return nil, err
	}

	type categoryRow struct {
		Category string
		Count    int64
	}
	var rows []categoryRow
	if err := s.DB.Model(&models.Room{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.CategoryDistribution[row.Category] = row.Count
	}

	return stats, nil
}
