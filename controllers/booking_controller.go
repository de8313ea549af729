package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"elegant-hotel/middleware"
	"elegant-hotel/models"
	"elegant-hotel/services"
	"elegant-hotel/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingPayload struct {
	RoomID          uint   `json:"room_id" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

func parseStayDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Create handles POST /api/bookings for the authenticated customer.
func (bc *BookingController) Create(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	checkIn, ok := parseStayDate(payload.CheckIn)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", "check_in: invalid date format")
		return
	}
	checkOut, ok := parseStayDate(payload.CheckOut)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", "check_out: invalid date format")
		return
	}

	booking, err := bc.Bookings.Create(services.CreateBookingInput{
		RoomID:          payload.RoomID,
		UserID:          middleware.CurrentUserID(c),
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          payload.Guests,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// List handles GET /api/bookings. Admins see everything and may filter;
// customers are always scoped to their own bookings.
func (bc *BookingController) List(c *gin.Context) {
	filter := services.BookingFilter{
		Status:    c.Query("status"),
		StartDate: parseDateQuery(c, "startDate"),
		EndDate:   parseDateQuery(c, "endDate"),
	}
	if raw := c.Query("roomId"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.RoomID = uint(v)
		}
	}

	if middleware.IsAdmin(c) {
		if raw := c.Query("userId"); raw != "" {
			if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
				filter.UserID = uint(v)
			}
		}
	} else {
		filter.UserID = middleware.CurrentUserID(c)
	}

	list, err := bc.Bookings.List(filter)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// My handles GET /api/bookings/my.
func (bc *BookingController) My(c *gin.Context) {
	list, err := bc.Bookings.List(services.BookingFilter{UserID: middleware.CurrentUserID(c)})
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get returns one booking, visible to its owner or any admin.
func (bc *BookingController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.Bookings.Get(id)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	if !middleware.IsAdmin(c) && booking.UserID != middleware.CurrentUserID(c) {
		utils.JSONError(c, http.StatusForbidden, "Forbidden")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Cancel handles PUT /api/bookings/:id/cancel. Owners may cancel while
// pending; admins may cancel per the transition table.
func (bc *BookingController) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.Bookings.Transition(id, middleware.CurrentUserID(c), middleware.IsAdmin(c), models.BookingCancelled)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /api/bookings/:id. Admin only, unconditional.
func (bc *BookingController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := bc.Bookings.Delete(id); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
