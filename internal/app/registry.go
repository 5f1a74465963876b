package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"faculty-ops/internal/auth"
	"faculty-ops/internal/employee"
	"faculty-ops/internal/leave"
	"faculty-ops/internal/meeting"
	"faculty-ops/internal/messaging/kafka"
	"faculty-ops/internal/middleware"
	"faculty-ops/internal/notification"
	"faculty-ops/internal/rbac"
	"faculty-ops/internal/rbac/infra"
	"faculty-ops/internal/timetable"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	meetingRepo := meeting.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	timetableRepo := timetable.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	// The notification service backs both the leave decision messages
	// and the meeting fan-out.
	notificationService := notification.NewService(notificationRepo, meetingRepo)
	employeeService := employee.NewService(db, employeeRepo)
	authService := auth.NewService(employeeRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, employeeRepo, notificationService, outboxRepo)
	meetingService := meeting.NewService(db, meetingRepo, employeeRepo, notificationService, outboxRepo)
	timetableService := timetable.NewService(timetableRepo, employeeRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	meetingHandler := meeting.NewHandlerWithRedis(meetingService, rdb)
	notificationHandler := notification.NewHandler(notificationService)
	timetableHandler := timetable.NewHandler(timetableService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, middleware.Idempotency(rdb))
		meeting.RegisterRoutes(api, meetingHandler, rbacService, middleware.Idempotency(rdb))
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		timetable.RegisterRoutes(api, timetableHandler, rbacService)
	}

	return nil
}
