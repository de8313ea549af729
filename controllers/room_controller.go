package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"elegant-hotel/services"
	"elegant-hotel/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

type roomPayload struct {
	Number      string         `json:"number"`
	Category    string         `json:"category"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Amenities   datatypes.JSON `json:"amenities"`
	Images      datatypes.JSON `json:"images"`
	Capacity    int            `json:"capacity"`
	Status      string         `json:"status"`
}

func (p roomPayload) toInput() services.RoomInput {
	return services.RoomInput{
		Number:      p.Number,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description,
		Amenities:   p.Amenities,
		Images:      p.Images,
		Capacity:    p.Capacity,
		Status:      p.Status,
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func parseDateQuery(c *gin.Context, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	return nil
}

// List handles GET /api/rooms with optional catalog and availability filters.
func (rc *RoomController) List(c *gin.Context) {
	filter := services.RoomFilter{
		Category:  c.Query("category"),
		StartDate: parseDateQuery(c, "startDate"),
		EndDate:   parseDateQuery(c, "endDate"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	if raw := c.Query("capacity"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Capacity = v
		}
	}

	rooms, err := rc.Rooms.List(filter)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	room, err := rc.Rooms.Get(id)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// Create handles POST /api/rooms. Admin only (routing enforces the role).
func (rc *RoomController) Create(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	in := payload.toInput()
	if details := services.ValidateRoomInput(in); len(details) > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", details...)
		return
	}

	room, err := rc.Rooms.Create(in)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	in := payload.toInput()
	if details := services.ValidateRoomInput(in); len(details) > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", details...)
		return
	}

	room, err := rc.Rooms.Update(id, in)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(id); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}
