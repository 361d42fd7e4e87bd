package models

import "time"

// Season codes stored on 'models.season'.
const (
	SeasonSummer = 1
	SeasonWinter = 2
)

// TireModel is the model for the 'models' table.
// Season lives here, not on the tire: every tire of a model shares it.
type TireModel struct {
	ID        int64     `json:"id" db:"id"`
	BrandID   int64     `json:"brandId" db:"brand_id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	Season    int       `json:"season" db:"season"` // 1 = summer, 2 = winter
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Flattened join field for UI convenience (populated manually)
	BrandName string `json:"brandName,omitempty" db:"-"`
}
