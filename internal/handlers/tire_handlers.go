package handlers

import (
	"database/sql"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SharpHawks/TireShop/internal/filter"
	"github.com/SharpHawks/TireShop/internal/models"
	"github.com/gin-gonic/gin"
)

// tireSelect is the joined projection every tire read uses: the row plus
// the flattened model/brand fields.
const tireSelect = `
	SELECT
		t.id, t.model_id, t.code, t.size, t.fuel_efficiency, t.wet_grip,
		t.noise_level, t.price, t.in_stock, t.image_url,
		t.created_at, t.updated_at, t.created_by_id,
		m.name, m.season, b.name
	FROM tires t
	JOIN models m ON t.model_id = m.id
	JOIN brands b ON m.brand_id = b.id`

func scanTire(rows interface{ Scan(...interface{}) error }) (models.Tire, error) {
	var tire models.Tire
	err := rows.Scan(
		&tire.ID,
		&tire.ModelID,
		&tire.Code,
		&tire.Size,
		&tire.FuelEfficiency,
		&tire.WetGrip,
		&tire.NoiseLevel,
		&tire.Price,
		&tire.InStock,
		&tire.ImageURL,
		&tire.CreatedAt,
		&tire.UpdatedAt,
		&tire.CreatedByID,
		&tire.ModelName,
		&tire.ModelSeason,
		&tire.BrandName,
	)
	return tire, err
}

// listTires runs the joined select with the compiled filter conjunction.
// Results come back in storage order.
func (h *Handlers) listTires(filters models.TireFilters) ([]models.Tire, error) {
	whereClause, args := filter.Compile(filter.TireConditions(filters))

	rows, err := h.DB.Query(tireSelect+whereClause+" ORDER BY t.id ASC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tires := []models.Tire{}
	for rows.Next() {
		tire, err := scanTire(rows)
		if err != nil {
			return nil, err
		}
		tires = append(tires, tire)
	}
	return tires, rows.Err()
}

func (h *Handlers) getTireByID(id string) (*models.Tire, error) {
	row := h.DB.QueryRow(tireSelect+" WHERE t.id = ?", id)
	tire, err := scanTire(row)
	if err != nil {
		return nil, err
	}
	return &tire, nil
}

// parseTireFilters reads the optional filter query params. Booleans come
// in as the literal strings "true"/"false".
func parseTireFilters(c *gin.Context) (models.TireFilters, error) {
	filters := models.TireFilters{
		Width:          c.Query("width"),
		Aspect:         c.Query("aspect"),
		Diameter:       c.Query("diameter"),
		Code:           c.Query("code"),
		FuelEfficiency: c.Query("fuelEfficiency"),
		WetGrip:        c.Query("wetGrip"),
	}

	for _, component := range []struct {
		name  string
		value string
	}{
		{"width", filters.Width},
		{"aspect", filters.Aspect},
		{"diameter", filters.Diameter},
	} {
		if component.value == "" {
			continue
		}
		if _, err := strconv.Atoi(component.value); err != nil {
			return filters, fmt.Errorf("invalid %s: must be numeric", component.name)
		}
	}

	for _, rating := range []struct {
		name  string
		value string
	}{
		{"fuelEfficiency", filters.FuelEfficiency},
		{"wetGrip", filters.WetGrip},
	} {
		if rating.value != "" && !models.ValidRating(rating.value) {
			return filters, fmt.Errorf("invalid %s: must be a letter A-G", rating.name)
		}
	}

	if raw := c.Query("inStock"); raw != "" {
		switch raw {
		case "true":
			v := true
			filters.InStock = &v
		case "false":
			v := false
			filters.InStock = &v
		default:
			return filters, fmt.Errorf("invalid inStock: must be \"true\" or \"false\"")
		}
	}

	if raw := c.Query("modelSeason"); raw != "" {
		season, err := strconv.Atoi(raw)
		if err != nil || (season != models.SeasonSummer && season != models.SeasonWinter) {
			return filters, fmt.Errorf("invalid modelSeason: must be 1 (summer) or 2 (winter)")
		}
		filters.ModelSeason = &season
	}

	if raw := c.Query("maxNoiseLevel"); raw != "" {
		noise, err := strconv.Atoi(raw)
		if err != nil || noise < 0 {
			return filters, fmt.Errorf("invalid maxNoiseLevel: must be a non-negative number")
		}
		filters.MaxNoiseLevel = &noise
	}

	return filters, nil
}

// GetTires is the handler for GET /api/tires
func (h *Handlers) GetTires(c *gin.Context) {
	filters, err := parseTireFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tires, err := h.listTires(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, tires)
}

// GetTire is the handler for GET /api/tires/:id
func (h *Handlers) GetTire(c *gin.Context) {
	tire, err := h.getTireByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tire not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, tire)
}

// CreateTireInput defines the JSON input for creating a tire.
// Price arrives in currency units and is stored in cents.
// Numeric fields are pointers so a legitimate zero still satisfies
// 'required'; the non-negative checks run in validateTireFields.
type CreateTireInput struct {
	ModelID        int64    `json:"modelId" binding:"required"`
	Code           string   `json:"code" binding:"required"`
	Size           string   `json:"size" binding:"required"`
	FuelEfficiency string   `json:"fuelEfficiency" binding:"required"`
	WetGrip        string   `json:"wetGrip" binding:"required"`
	NoiseLevel     *int     `json:"noiseLevel" binding:"required"`
	Price          *float64 `json:"price" binding:"required"`
	InStock        *bool    `json:"inStock" binding:"required"`
	ImageURL       string   `json:"imageUrl" binding:"required"`
}

func validateTireFields(size, fuelEfficiency, wetGrip string, noiseLevel int, priceCents int) string {
	if !models.ValidTireSize(size) {
		return "Size must look like '205/55R16'"
	}
	if !models.ValidRating(fuelEfficiency) {
		return "Fuel efficiency rating must be a letter A-G"
	}
	if !models.ValidRating(wetGrip) {
		return "Wet grip rating must be a letter A-G"
	}
	if noiseLevel < 0 {
		return "Noise level cannot be negative"
	}
	if priceCents < 0 {
		return "Price cannot be negative"
	}
	return ""
}

// CreateTire is the handler for POST /api/tires
func (h *Handlers) CreateTire(c *gin.Context) {
	var input CreateTireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	priceCents := int(math.Round(*input.Price * 100))
	if msg := validateTireFields(input.Size, input.FuelEfficiency, input.WetGrip, *input.NoiseLevel, priceCents); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var exists int
	if err := h.DB.QueryRow("SELECT 1 FROM models WHERE id = ?", input.ModelID).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Model does not exist"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		}
		return
	}

	// Stamp the creator from the auth context.
	var createdByID *int64
	if userIDRaw, ok := c.Get("userID"); ok {
		userID := userIDRaw.(int64)
		createdByID = &userID
	}

	now := time.Now()
	query := `
		INSERT INTO tires
		(model_id, code, size, fuel_efficiency, wet_grip, noise_level, price, in_stock, image_url, created_at, updated_at, created_by_id)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		input.ModelID, input.Code, input.Size, input.FuelEfficiency, input.WetGrip,
		*input.NoiseLevel, priceCents, *input.InStock, input.ImageURL, now, now, createdByID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tire"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new tire ID"})
		return
	}

	tire, err := h.getTireByID(strconv.FormatInt(id, 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created tire"})
		return
	}

	c.JSON(http.StatusCreated, tire)
}

// UpdateTireInput is a partial patch; only provided fields change.
type UpdateTireInput struct {
	ModelID        *int64   `json:"modelId"`
	Code           *string  `json:"code"`
	Size           *string  `json:"size"`
	FuelEfficiency *string  `json:"fuelEfficiency"`
	WetGrip        *string  `json:"wetGrip"`
	NoiseLevel     *int     `json:"noiseLevel"`
	Price          *float64 `json:"price"`
	InStock        *bool    `json:"inStock"`
	ImageURL       *string  `json:"imageUrl"`
}

// UpdateTire is the handler for PATCH /api/tires/:id
func (h *Handlers) UpdateTire(c *gin.Context) {
	tireID := c.Param("id")

	var input UpdateTireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var setClauses []string
	var args []interface{}

	if input.ModelID != nil {
		var exists int
		if err := h.DB.QueryRow("SELECT 1 FROM models WHERE id = ?", *input.ModelID).Scan(&exists); err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Model does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
			}
			return
		}
		setClauses = append(setClauses, "model_id = ?")
		args = append(args, *input.ModelID)
	}
	if input.Code != nil {
		setClauses = append(setClauses, "code = ?")
		args = append(args, *input.Code)
	}
	if input.Size != nil {
		if !models.ValidTireSize(*input.Size) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Size must look like '205/55R16'"})
			return
		}
		setClauses = append(setClauses, "size = ?")
		args = append(args, *input.Size)
	}
	if input.FuelEfficiency != nil {
		if !models.ValidRating(*input.FuelEfficiency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Fuel efficiency rating must be a letter A-G"})
			return
		}
		setClauses = append(setClauses, "fuel_efficiency = ?")
		args = append(args, *input.FuelEfficiency)
	}
	if input.WetGrip != nil {
		if !models.ValidRating(*input.WetGrip) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Wet grip rating must be a letter A-G"})
			return
		}
		setClauses = append(setClauses, "wet_grip = ?")
		args = append(args, *input.WetGrip)
	}
	if input.NoiseLevel != nil {
		if *input.NoiseLevel < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Noise level cannot be negative"})
			return
		}
		setClauses = append(setClauses, "noise_level = ?")
		args = append(args, *input.NoiseLevel)
	}
	if input.Price != nil {
		priceCents := int(math.Round(*input.Price * 100))
		if priceCents < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
			return
		}
		setClauses = append(setClauses, "price = ?")
		args = append(args, priceCents)
	}
	if input.InStock != nil {
		setClauses = append(setClauses, "in_stock = ?")
		args = append(args, *input.InStock)
	}
	if input.ImageURL != nil {
		setClauses = append(setClauses, "image_url = ?")
		args = append(args, *input.ImageURL)
	}

	if len(setClauses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	var exists int
	if err := h.DB.QueryRow("SELECT 1 FROM tires WHERE id = ?", tireID).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tire not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		}
		return
	}

	setClauses = append(setClauses, "updated_at = ?")
	args = append(args, time.Now(), tireID)

	query := fmt.Sprintf("UPDATE tires SET %s WHERE id = ?", strings.Join(setClauses, ", "))
	if _, err := h.DB.Exec(query, args...); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tire"})
		return
	}

	tire, err := h.getTireByID(tireID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated tire"})
		return
	}

	c.JSON(http.StatusOK, tire)
}

// DeleteTire is the handler for DELETE /api/tires/:id
// Hard delete; a second call for the same id gets a 404.
func (h *Handlers) DeleteTire(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM tires WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tire"})
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check delete result"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tire not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
