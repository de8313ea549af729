package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"elegant-hotel/middleware"
	"elegant-hotel/services"
	"elegant-hotel/utils"
)

// AdminController serves the dashboard and user management endpoints. Every
// route behind it runs RequireAuth + RequireAdmin.
type AdminController struct {
	Users    *services.UserService
	Bookings *services.BookingService
	Stats    *services.StatsService
}

func NewAdminController(users *services.UserService, bookings *services.BookingService, stats *services.StatsService) *AdminController {
	return &AdminController{Users: users, Bookings: bookings, Stats: stats}
}

// GetStats handles GET /api/admin/stats.
func (adc *AdminController) GetStats(c *gin.Context) {
	stats, err := adc.Stats.Dashboard()
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RecentBookings handles GET /api/admin/bookings/recent.
func (adc *AdminController) RecentBookings(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 50 {
			limit = v
		}
	}

	list, err := adc.Bookings.Recent(limit)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type bookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingStatus handles PATCH /api/admin/bookings/:id.
func (adc *AdminController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	booking, err := adc.Bookings.Transition(id, middleware.CurrentUserID(c), true, payload.Status)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListUsers handles GET /api/admin/users.
func (adc *AdminController) ListUsers(c *gin.Context) {
	users, err := adc.Users.List()
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type userUpdatePayload struct {
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

// UpdateUser handles PATCH /api/admin/users/:id (role and active toggles).
func (adc *AdminController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload userUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	user, err := adc.Users.Update(id, services.UserUpdateInput{
		Role:   payload.Role,
		Active: payload.Active,
	})
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (adc *AdminController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if id == middleware.CurrentUserID(c) {
		utils.JSONError(c, http.StatusBadRequest, "cannot delete your own account")
		return
	}
	if err := adc.Users.Delete(id); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
