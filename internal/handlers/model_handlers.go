package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SharpHawks/TireShop/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// CreateModelInput defines the JSON input for creating a tire model.
type CreateModelInput struct {
	BrandID int64  `json:"brandId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Season  int    `json:"season" binding:"required"` // 1 = summer, 2 = winter
}

// UpdateModelInput is a partial patch; only provided fields change.
type UpdateModelInput struct {
	BrandID *int64  `json:"brandId"`
	Name    *string `json:"name"`
	Season  *int    `json:"season"`
}

// CreateModel is the handler for POST /api/models
func (h *Handlers) CreateModel(c *gin.Context) {
	var input CreateModelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Season != models.SeasonSummer && input.Season != models.SeasonWinter {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Season must be 1 (summer) or 2 (winter)"})
		return
	}

	// The brand must exist before we hang a model off it.
	var exists int
	if err := h.DB.QueryRow("SELECT 1 FROM brands WHERE id = ?", input.BrandID).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Brand does not exist"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		}
		return
	}

	model := &models.TireModel{
		BrandID:   input.BrandID,
		Name:      input.Name,
		Slug:      slug.Make(input.Name),
		Season:    input.Season,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	query := `
		INSERT INTO models
		(brand_id, name, slug, season, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		model.BrandID, model.Name, model.Slug, model.Season, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		if isDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Model already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create model"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new model ID"})
		return
	}
	model.ID = id

	c.JSON(http.StatusCreated, model)
}

// GetAllModels is the handler for GET /api/models
func (h *Handlers) GetAllModels(c *gin.Context) {
	h.listModels(c, "", nil)
}

// GetModelsByBrand is the handler for GET /api/brands/:id/models
func (h *Handlers) GetModelsByBrand(c *gin.Context) {
	h.listModels(c, " WHERE m.brand_id = ?", []interface{}{c.Param("id")})
}

func (h *Handlers) listModels(c *gin.Context, whereClause string, args []interface{}) {
	query := fmt.Sprintf(`
		SELECT m.id, m.brand_id, m.name, m.slug, m.season, m.created_at, m.updated_at, b.name
		FROM models m
		JOIN brands b ON m.brand_id = b.id%s
		ORDER BY b.name ASC, m.name ASC`, whereClause)

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	tireModels := []*models.TireModel{}
	for rows.Next() {
		var model models.TireModel
		if err := rows.Scan(
			&model.ID,
			&model.BrandID,
			&model.Name,
			&model.Slug,
			&model.Season,
			&model.CreatedAt,
			&model.UpdatedAt,
			&model.BrandName,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan model row"})
			return
		}
		tireModels = append(tireModels, &model)
	}

	c.JSON(http.StatusOK, tireModels)
}

// UpdateModel is the handler for PATCH /api/models/:id
func (h *Handlers) UpdateModel(c *gin.Context) {
	modelID := c.Param("id")

	var input UpdateModelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var setClauses []string
	var args []interface{}

	if input.Name != nil {
		if *input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name cannot be empty"})
			return
		}
		setClauses = append(setClauses, "name = ?", "slug = ?")
		args = append(args, *input.Name, slug.Make(*input.Name))
	}
	if input.BrandID != nil {
		var exists int
		if err := h.DB.QueryRow("SELECT 1 FROM brands WHERE id = ?", *input.BrandID).Scan(&exists); err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Brand does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
			}
			return
		}
		setClauses = append(setClauses, "brand_id = ?")
		args = append(args, *input.BrandID)
	}
	if input.Season != nil {
		if *input.Season != models.SeasonSummer && *input.Season != models.SeasonWinter {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Season must be 1 (summer) or 2 (winter)"})
			return
		}
		setClauses = append(setClauses, "season = ?")
		args = append(args, *input.Season)
	}

	if len(setClauses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	var exists int
	if err := h.DB.QueryRow("SELECT 1 FROM models WHERE id = ?", modelID).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Model not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		}
		return
	}

	setClauses = append(setClauses, "updated_at = ?")
	args = append(args, time.Now(), modelID)

	query := fmt.Sprintf("UPDATE models SET %s WHERE id = ?", strings.Join(setClauses, ", "))
	if _, err := h.DB.Exec(query, args...); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update model"})
		return
	}

	var model models.TireModel
	err := h.DB.QueryRow(`
		SELECT m.id, m.brand_id, m.name, m.slug, m.season, m.created_at, m.updated_at, b.name
		FROM models m
		JOIN brands b ON m.brand_id = b.id
		WHERE m.id = ?`, modelID).Scan(
		&model.ID, &model.BrandID, &model.Name, &model.Slug,
		&model.Season, &model.CreatedAt, &model.UpdatedAt, &model.BrandName)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Model not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated model"})
		return
	}

	c.JSON(http.StatusOK, model)
}

// DeleteModel is the handler for DELETE /api/models/:id
func (h *Handlers) DeleteModel(c *gin.Context) {
	modelID := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM models WHERE id = ?", modelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete model"})
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check delete result"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Model not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
