package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/SharpHawks/TireShop/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// CreateBrandInput defines the JSON input for creating a brand
type CreateBrandInput struct {
	Name string `json:"name" binding:"required"`
}

// UpdateBrandInput is a partial patch; only provided fields change.
type UpdateBrandInput struct {
	Name *string `json:"name"`
}

// CreateBrand is the handler for POST /api/brands
func (h *Handlers) CreateBrand(c *gin.Context) {
	var input CreateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand := &models.Brand{
		Name:      input.Name,
		Slug:      slug.Make(input.Name),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	query := `
		INSERT INTO brands
		(name, slug, created_at, updated_at)
		VALUES
		(?, ?, ?, ?)`

	result, err := h.DB.Exec(query, brand.Name, brand.Slug, brand.CreatedAt, brand.UpdatedAt)
	if err != nil {
		if isDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Brand already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new brand ID"})
		return
	}
	brand.ID = id

	c.JSON(http.StatusCreated, brand)
}

// GetAllBrands is the handler for GET /api/brands
func (h *Handlers) GetAllBrands(c *gin.Context) {
	query := "SELECT id, name, slug, created_at, updated_at FROM brands ORDER BY name ASC"

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	brands := []*models.Brand{}
	for rows.Next() {
		var brand models.Brand
		if err := rows.Scan(
			&brand.ID,
			&brand.Name,
			&brand.Slug,
			&brand.CreatedAt,
			&brand.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan brand row"})
			return
		}
		brands = append(brands, &brand)
	}

	c.JSON(http.StatusOK, brands)
}

// UpdateBrand is the handler for PATCH /api/brands/:id
func (h *Handlers) UpdateBrand(c *gin.Context) {
	brandID := c.Param("id")

	var input UpdateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Name == nil || *input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	// Check existence up front: RowsAffected is 0 for a no-op update too,
	// so it cannot distinguish "missing" from "unchanged".
	var exists int
	if err := h.DB.QueryRow("SELECT 1 FROM brands WHERE id = ?", brandID).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		}
		return
	}

	_, err := h.DB.Exec(
		"UPDATE brands SET name = ?, slug = ?, updated_at = ? WHERE id = ?",
		*input.Name, slug.Make(*input.Name), time.Now(), brandID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Brand already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update brand"})
		return
	}

	var brand models.Brand
	err = h.DB.QueryRow(
		"SELECT id, name, slug, created_at, updated_at FROM brands WHERE id = ?", brandID,
	).Scan(&brand.ID, &brand.Name, &brand.Slug, &brand.CreatedAt, &brand.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated brand"})
		return
	}

	c.JSON(http.StatusOK, brand)
}

// DeleteBrand is the handler for DELETE /api/brands/:id
// Hard delete; a second call for the same id gets a 404.
func (h *Handlers) DeleteBrand(c *gin.Context) {
	brandID := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM brands WHERE id = ?", brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check delete result"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
