package notification

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
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", middleware.RBACAuthorize(rbacService, "notification", "read"), handler.GetFeed)
		notifications.POST("/clear", middleware.RBACAuthorize(rbacService, "notification", "clear"), handler.Clear)
	}
}
