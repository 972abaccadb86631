package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/fleetyard/internal/store"
	"gorm.io/gorm"
)

func handleCatalogList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.CatalogCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, len(categories))
		for i, cat := range categories {
			fields := make([]gin.H, len(cat.Fields))
			for j, f := range cat.Fields {
				fields[j] = gin.H{"key": f.Key, "label": f.Label}
			}
			out[i] = gin.H{"category": cat.Name, "fields": fields}
		}
		c.JSON(http.StatusOK, out)
	}
}

type catalogUpdateRequest struct {
	Label string `json:"label" binding:"required"`
}

func handleCatalogUpdate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalogUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := store.UpdateFieldLabel(db, c.Param("key"), req.Label)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
