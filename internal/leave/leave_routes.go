package leave

import (
	"github.com/gin-gonic/gin"

	"faculty-ops/internal/middleware"
	"faculty-ops/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	submitMiddleware ...gin.HandlerFunc,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		submitChain := append(
			[]gin.HandlerFunc{middleware.RBACAuthorize(rbacService, "leave", "create")},
			submitMiddleware...,
		)
		leaves.POST("", append(submitChain, handler.Submit)...)

		leaves.GET("/mine", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetMine)
		leaves.GET("/review-queue", middleware.RBACAuthorize(rbacService, "leave", "review"), handler.GetReviewQueue)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetById)
		leaves.PATCH("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "review"), handler.Approve)
		leaves.PATCH("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "review"), handler.Reject)
	}
}
