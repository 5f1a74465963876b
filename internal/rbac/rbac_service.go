package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"

	"faculty-ops/internal/domain"
)

const (
	RoleFaculty        = "faculty"
	RoleHOD            = "hod"
	RoleHR             = "hr"
	RolePrincipal      = "principal"
	RoleTimetableAdmin = "timetable-admin"
)

// policy rows: role, resource, action. Reviewer roles share the leave
// review permission; the stage an application sits in decides which of
// them may act on it (enforced by the leave service transition table).
var defaultPolicy = [][]string{
	{RoleFaculty, "leave", "create"},
	{RoleFaculty, "leave", "read"},
	{RoleFaculty, "meeting", "read"},
	{RoleFaculty, "notification", "read"},
	{RoleFaculty, "notification", "clear"},
	{RoleFaculty, "timetable", "read"},

	{RoleHOD, "leave", "read"},
	{RoleHOD, "leave", "review"},
	{RoleHOD, "meeting", "create"},
	{RoleHOD, "meeting", "read"},
	{RoleHOD, "notification", "read"},
	{RoleHOD, "notification", "clear"},

	{RoleHR, "leave", "read"},
	{RoleHR, "leave", "review"},
	{RoleHR, "meeting", "create"},
	{RoleHR, "meeting", "read"},
	{RoleHR, "notification", "read"},
	{RoleHR, "notification", "clear"},
	{RoleHR, "employee", "read"},

	{RolePrincipal, "leave", "read"},
	{RolePrincipal, "leave", "review"},
	{RolePrincipal, "meeting", "create"},
	{RolePrincipal, "meeting", "read"},
	{RolePrincipal, "notification", "read"},
	{RolePrincipal, "notification", "clear"},
	{RolePrincipal, "employee", "create"},
	{RolePrincipal, "employee", "read"},

	{RoleTimetableAdmin, "timetable", "import"},
	{RoleTimetableAdmin, "timetable", "read"},
	{RoleTimetableAdmin, "notification", "read"},
	{RoleTimetableAdmin, "notification", "clear"},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	for _, p := range defaultPolicy {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}
