package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/quickquid/quickquid_backend/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerPersonRoutes(v1, services.Person)
	registerBranchRoutes(v1, services.Branch)
	registerAccountRoutes(v1, services.Account)
	registerTransferRoutes(v1, services.Transfer)
}
