package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidDateRange is returned when check-out is not after check-in.
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	// ErrCapacityExceeded is returned when guest count exceeds room capacity.
	ErrCapacityExceeded = errors.New("guest count exceeds room capacity")
	// ErrRoomNotFound is returned when a room does not exist.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomUnavailable is returned when a room is not in available status.
	ErrRoomUnavailable = errors.New("room is not available")
	// ErrRoomNotAvailableForDates is returned when the requested stay
	// overlaps an existing pending or confirmed booking.
	ErrRoomNotAvailableForDates = errors.New("room is not available for the selected dates")
	// ErrInvalidTransition is returned for a status change outside the
	// booking state machine.
	ErrInvalidTransition = errors.New("invalid booking status transition")
	// ErrBookingNotFound is returned when a booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrAccountDisabled is returned when a deactivated user logs in.
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrRoomNumberTaken is returned when a room number collides.
	ErrRoomNumberTaken = errors.New("room number already exists")
	// ErrRoomHasBookings is returned when deleting a room that bookings
	// still reference.
	ErrRoomHasBookings = errors.New("room has bookings and cannot be deleted")
	// ErrInvalidRole is returned when assigning a role outside the enum.
	ErrInvalidRole = errors.New("role must be customer or admin")
	// ErrUnauthorized is returned when no valid identity is present.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the identity lacks the required role
	// or does not own the resource.
	ErrForbidden = errors.New("forbidden")
)

// HTTPError is a domain error mapped to an HTTP status.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// becomes a 500 with a generic message.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidDateRange):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_RANGE")
	case errors.Is(err, ErrCapacityExceeded):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CAPACITY_EXCEEDED")
	case errors.Is(err, ErrRoomNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ROOM_NOT_FOUND")
	case errors.Is(err, ErrRoomUnavailable):
		return NewHTTPError(http.StatusConflict, err.Error(), "ROOM_UNAVAILABLE")
	case errors.Is(err, ErrRoomNotAvailableForDates):
		return NewHTTPError(http.StatusConflict, err.Error(), "ROOM_NOT_AVAILABLE_FOR_DATES")
	case errors.Is(err, ErrInvalidTransition):
		return NewHTTPError(http.StatusConflict, err.Error(), "INVALID_TRANSITION")
	case errors.Is(err, ErrBookingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOKING_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAccountDisabled):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCOUNT_DISABLED")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrRoomNumberTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "ROOM_NUMBER_TAKEN")
	case errors.Is(err, ErrRoomHasBookings):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROOM_HAS_BOOKINGS")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
