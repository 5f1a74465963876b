package timetable

import (
	"github.com/gin-gonic/gin"

	"faculty-ops/internal/middleware"
	"faculty-ops/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	timetables := r.Group("/timetables")
	timetables.Use(middleware.AuthMiddleware())
	{
		timetables.POST("/import", middleware.RBACAuthorize(rbacService, "timetable", "import"), handler.Import)
		timetables.GET("/mine", middleware.RBACAuthorize(rbacService, "timetable", "read"), handler.GetMine)
		timetables.GET("/employees/:id", middleware.RBACAuthorize(rbacService, "timetable", "read"), handler.GetByEmployee)
	}
}
