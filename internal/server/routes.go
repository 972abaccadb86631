package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all API routes. Reads are open; writes require
// the admin token when one is configured.
func registerRoutes(router *gin.Engine, opts StartOpts) {
	api := router.Group("/api")

	api.GET("/vehicles", handleVehicleList(opts.DB))
	api.GET("/vehicles/:id", handleVehicleDetail(opts.DB))
	api.GET("/vehicles/:id/inspections", handleInspectionList(opts.DB))
	api.GET("/vehicles/:id/maintenance", handleMaintenanceList(opts.DB))
	api.GET("/vehicles/:id/health", handleVehicleHealth(opts))
	api.GET("/fleet/health", handleFleetHealth(opts))
	api.GET("/checklist", handleCatalogList(opts.DB))

	write := api.Group("", requireAdminToken(opts.AdminToken))
	write.POST("/vehicles", handleVehicleCreate(opts.DB))
	write.PATCH("/vehicles/:id", handleVehicleUpdate(opts.DB))
	write.DELETE("/vehicles/:id", handleVehicleRetire(opts.DB))
	write.POST("/vehicles/:id/inspections", handleInspectionCreate(opts.DB))
	write.POST("/vehicles/:id/maintenance", handleMaintenanceCreate(opts.DB))
	write.DELETE("/inspections/:id", handleInspectionDelete(opts.DB))
	write.DELETE("/maintenance/:id", handleMaintenanceDelete(opts.DB))
	write.PUT("/checklist/:key", handleCatalogUpdate(opts.DB))
}

// requireAdminToken rejects mutating requests without the configured
// bearer token. An empty configured token disables writes entirely.
func requireAdminToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "writes are disabled: no admin token configured",
			})
			return
		}
		if c.GetHeader("Authorization") != "Bearer "+token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or missing admin token",
			})
			return
		}
		c.Next()
	}
}
