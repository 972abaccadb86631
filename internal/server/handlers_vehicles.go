package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/fleetyard/internal/models"
	"github.com/zulandar/fleetyard/internal/store"
	"gorm.io/gorm"
)

// vehicleJSON is the API shape for a vehicle.
type vehicleJSON struct {
	ID     uint   `json:"id"`
	Code   string `json:"code"`
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Year   int    `json:"year"`
	Plate  string `json:"plate"`
	Active bool   `json:"active"`
}

func toVehicleJSON(v models.Vehicle) vehicleJSON {
	return vehicleJSON{
		ID: v.ID, Code: v.Code, Brand: v.Brand, Model: v.Model,
		Year: v.Year, Plate: v.Plate, Active: v.Active,
	}
}

// vehicleID parses the :id path parameter.
func vehicleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return 0, false
	}
	return uint(id), true
}

func handleVehicleList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			vehicles []models.Vehicle
			err      error
		)
		if c.Query("include_retired") == "true" {
			vehicles, err = store.AllVehicles(db)
		} else {
			vehicles, err = store.ActiveVehicles(db)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		out := make([]vehicleJSON, len(vehicles))
		for i, v := range vehicles {
			out[i] = toVehicleJSON(v)
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleVehicleDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := vehicleID(c)
		if !ok {
			return
		}
		v, err := store.GetVehicle(db, id)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toVehicleJSON(*v))
	}
}

type vehicleCreateRequest struct {
	Code  string `json:"code" binding:"required"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Plate string `json:"plate"`
}

func handleVehicleCreate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req vehicleCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		v := models.Vehicle{
			Code: req.Code, Brand: req.Brand, Model: req.Model,
			Year: req.Year, Plate: req.Plate,
		}
		if err := store.CreateVehicle(db, &v); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, toVehicleJSON(v))
	}
}

func handleVehicleUpdate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := vehicleID(c)
		if !ok {
			return
		}
		var req map[string]interface{}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Only whitelisted columns are updatable over the API.
		updates := map[string]interface{}{}
		for _, col := range []string{"brand", "model", "year", "plate"} {
			if val, present := req[col]; present {
				updates[col] = val
			}
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields in request"})
			return
		}

		if err := store.UpdateVehicle(db, id, updates); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleVehicleRetire(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := vehicleID(c)
		if !ok {
			return
		}
		if err := store.RetireVehicle(db, id); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
