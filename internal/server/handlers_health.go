package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/fleetyard/internal/health"
	"github.com/zulandar/fleetyard/internal/store"
	"gorm.io/gorm"
)

// newEngine builds a health engine with the current checklist catalog.
// The catalog is admin-editable, so labels are re-read per request.
func newEngine(db *gorm.DB, cfg health.Config) (*health.Engine, error) {
	labels, err := store.LoadCatalogLabels(db)
	if err != nil {
		return nil, err
	}
	return health.New(cfg, health.NewCatalogResolver(labels)), nil
}

func handleFleetHealth(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, err := newEngine(opts.DB, opts.EngineConfig)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		input, err := store.LoadEngineInput(opts.DB)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		report := engine.EvaluateFleet(time.Now(), input.Vehicles, input.Inspections, input.Maintenance)
		c.JSON(http.StatusOK, report)
	}
}

func handleVehicleHealth(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := vehicleID(c)
		if !ok {
			return
		}
		v, err := store.GetVehicle(opts.DB, id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		engine, err := newEngine(opts.DB, opts.EngineConfig)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		rows, err := store.InspectionsForVehicle(opts.DB, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		inspections := make([]health.Inspection, len(rows))
		for i, row := range rows {
			inspections[i], err = store.ConvertInspection(row)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		maintRows, err := store.MaintenanceForVehicle(opts.DB, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		maintenance := make([]health.Maintenance, len(maintRows))
		for i, row := range maintRows {
			maintenance[i] = health.Maintenance{
				ID:         row.ID,
				VehicleID:  row.VehicleID,
				OccurredAt: row.OccurredAt,
				OdometerKm: row.OdometerKm,
			}
		}

		result := engine.EvaluateVehicle(time.Now(),
			health.Vehicle{ID: v.ID, Code: v.Code, Brand: v.Brand, Model: v.Model},
			inspections, maintenance)

		body := gin.H{"state": result.State}
		if result.Flagged != nil {
			body["flagged"] = result.Flagged
		}
		c.JSON(http.StatusOK, body)
	}
}
