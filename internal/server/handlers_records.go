package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/fleetyard/internal/health"
	"github.com/zulandar/fleetyard/internal/store"
	"gorm.io/gorm"
)

type inspectionCreateRequest struct {
	OccurredAt time.Time                       `json:"occurred_at" binding:"required"`
	OdometerKm int                             `json:"odometer_km"`
	Inspector  string                          `json:"inspector"`
	Checklist  map[string]health.ChecklistItem `json:"checklist"`
}

func handleInspectionCreate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := vehicleID(c)
		if !ok {
			return
		}
		if _, err := store.GetVehicle(db, id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		var req inspectionCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		insp, err := store.AddInspection(db, id, req.OccurredAt, req.OdometerKm, req.Inspector, req.Checklist)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": insp.ID})
	}
}

func handleInspectionList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := vehicleID(c)
		if !ok {
			return
		}
		inspections, err := store.InspectionsForVehicle(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, len(inspections))
		for i, insp := range inspections {
			converted, err := store.ConvertInspection(insp)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			out[i] = gin.H{
				"id":          insp.ID,
				"occurred_at": insp.OccurredAt,
				"odometer_km": insp.OdometerKm,
				"inspector":   insp.Inspector,
				"checklist":   converted.Checklist,
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleInspectionDelete(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.DeleteInspection(db, c.Param("id"))
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

type maintenanceCreateRequest struct {
	OccurredAt  time.Time `json:"occurred_at" binding:"required"`
	OdometerKm  int       `json:"odometer_km"`
	Workshop    string    `json:"workshop"`
	Description string    `json:"description"`
	CostCents   int64     `json:"cost_cents"`
}

func handleMaintenanceCreate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := vehicleID(c)
		if !ok {
			return
		}
		if _, err := store.GetVehicle(db, id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		var req maintenanceCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		maint, err := store.AddMaintenance(db, id, req.OccurredAt, req.OdometerKm, req.Workshop, req.Description, req.CostCents)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": maint.ID})
	}
}

func handleMaintenanceList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := vehicleID(c)
		if !ok {
			return
		}
		maintenance, err := store.MaintenanceForVehicle(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, len(maintenance))
		for i, maint := range maintenance {
			out[i] = gin.H{
				"id":          maint.ID,
				"occurred_at": maint.OccurredAt,
				"odometer_km": maint.OdometerKm,
				"workshop":    maint.Workshop,
				"description": maint.Description,
				"cost_cents":  maint.CostCents,
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleMaintenanceDelete(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.DeleteMaintenance(db, c.Param("id"))
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
