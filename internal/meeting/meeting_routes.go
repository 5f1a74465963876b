package meeting

import (
	"github.com/gin-gonic/gin"

	"faculty-ops/internal/middleware"
	"faculty-ops/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	scheduleMiddleware ...gin.HandlerFunc,
) {
	meetings := r.Group("/meetings")
	meetings.Use(middleware.AuthMiddleware())
	{
		scheduleChain := append(
			[]gin.HandlerFunc{middleware.RBACAuthorize(rbacService, "meeting", "create")},
			scheduleMiddleware...,
		)
		meetings.POST("", append(scheduleChain, handler.Schedule)...)

		meetings.GET("", middleware.RBACAuthorize(rbacService, "meeting", "read"), handler.GetAll)
		meetings.GET("/:id", middleware.RBACAuthorize(rbacService, "meeting", "read"), handler.GetById)
	}
}
