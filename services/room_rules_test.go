package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func validRoomInput() RoomInput {
	return RoomInput{
		Number:      "101",
		Category:    "Basic",
		Price:       100,
		Description: "Cozy room with a garden view",
		Amenities:   datatypes.JSON([]byte(`["wifi"]`)),
		Images:      datatypes.JSON([]byte(`["https://example.com/101.jpg"]`)),
		Capacity:    2,
	}
}

func TestValidateRoomInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RoomInput)
		wantErr string
	}{
		{
			name:   "valid input",
			mutate: func(in *RoomInput) {},
		},
		{
			name:    "missing number",
			mutate:  func(in *RoomInput) { in.Number = "  " },
			wantErr: "room number is required",
		},
		{
			name:    "bad category",
			mutate:  func(in *RoomInput) { in.Category = "Penthouse" },
			wantErr: "category must be one of Basic, Premium, Suite",
		},
		{
			name:    "negative price",
			mutate:  func(in *RoomInput) { in.Price = -1 },
			wantErr: "price must not be negative",
		},
		{
			name:    "short description",
			mutate:  func(in *RoomInput) { in.Description = "small" },
			wantErr: "description must be at least 10 characters",
		},
		{
			name:    "zero capacity",
			mutate:  func(in *RoomInput) { in.Capacity = 0 },
			wantErr: "capacity must be at least 1",
		},
		{
			name:    "bad status",
			mutate:  func(in *RoomInput) { in.Status = "closed" },
			wantErr: "status must be one of available, occupied, maintenance",
		},
		{
			name:    "nil amenities",
			mutate:  func(in *RoomInput) { in.Amenities = nil },
			wantErr: "at least one amenity is required",
		},
		{
			name:    "empty amenities array",
			mutate:  func(in *RoomInput) { in.Amenities = datatypes.JSON([]byte(`[]`)) },
			wantErr: "at least one amenity is required",
		},
		{
			name:    "malformed amenities",
			mutate:  func(in *RoomInput) { in.Amenities = datatypes.JSON([]byte(`{"wifi":true}`)) },
			wantErr: "amenities must be a JSON array of strings",
		},
		{
			name:    "nil images",
			mutate:  func(in *RoomInput) { in.Images = nil },
			wantErr: "at least one image is required",
		},
		{
			name:    "empty images array",
			mutate:  func(in *RoomInput) { in.Images = datatypes.JSON([]byte(`[]`)) },
			wantErr: "at least one image is required",
		},
		{
			name:    "image not a URL",
			mutate:  func(in *RoomInput) { in.Images = datatypes.JSON([]byte(`["101.jpg"]`)) },
			wantErr: "images must be valid http(s) URLs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRoomInput()
			tt.mutate(&in)
			details := ValidateRoomInput(in)
			if tt.wantErr == "" {
				assert.Empty(t, details)
			} else {
				assert.Contains(t, details, tt.wantErr)
			}
		})
	}
}
