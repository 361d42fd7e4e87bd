package models

import (
	"regexp"
	"time"
)

// Tire is the model for the 'tires' table.
// Price is stored in cents; ratings are single letters A-G.
type Tire struct {
	ID             int64   `json:"id" db:"id"`
	ModelID        int64   `json:"modelId" db:"model_id"`
	Code           string  `json:"code" db:"code"` // equipment marker, e.g. 'RSC', 'SEAL', 'XL'
	Size           string  `json:"size" db:"size"` // e.g. '205/55R16'
	FuelEfficiency string  `json:"fuelEfficiency" db:"fuel_efficiency"`
	WetGrip        string  `json:"wetGrip" db:"wet_grip"`
	NoiseLevel     int     `json:"noiseLevel" db:"noise_level"` // in decibels
	Price          int     `json:"price" db:"price"`            // in cents
	InStock        bool    `json:"inStock" db:"in_stock"`
	ImageURL       string  `json:"imageUrl" db:"image_url"`
	CreatedByID    *int64  `json:"createdById,omitempty" db:"created_by_id"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Flattened join fields (populated from models/brands, not stored on the row)
	ModelName   string `json:"modelName,omitempty" db:"-"`
	BrandName   string `json:"brandName,omitempty" db:"-"`
	ModelSeason int    `json:"modelSeason,omitempty" db:"-"`
}

// sizeRx matches the 'width/aspectRdiameter' encoding, e.g. '205/55R16'.
var sizeRx = regexp.MustCompile(`^\d{2,3}/\d{2,3}R\d{2}$`)

// ValidTireSize reports whether s decomposes into the three numeric
// size components.
func ValidTireSize(s string) bool {
	return sizeRx.MatchString(s)
}

// ValidRating reports whether r is a single letter in the A-G label range.
func ValidRating(r string) bool {
	return len(r) == 1 && r[0] >= 'A' && r[0] <= 'G'
}
