package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"faculty-ops/internal/domain"
	"faculty-ops/internal/rbac"
	"faculty-ops/internal/rbac/infra"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()

	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc, err := rbac.NewService(enforcer)
	assert.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"faculty can submit leave", rbac.RoleFaculty, "leave", "create", true},
		{"faculty cannot review leave", rbac.RoleFaculty, "leave", "review", false},
		{"faculty cannot schedule meetings", rbac.RoleFaculty, "meeting", "create", false},
		{"hod can review leave", rbac.RoleHOD, "leave", "review", true},
		{"hr can review leave", rbac.RoleHR, "leave", "review", true},
		{"principal can review leave", rbac.RolePrincipal, "leave", "review", true},
		{"principal can create accounts", rbac.RolePrincipal, "employee", "create", true},
		{"hod can schedule meetings", rbac.RoleHOD, "meeting", "create", true},
		{"timetable admin can import", rbac.RoleTimetableAdmin, "timetable", "import", true},
		{"timetable admin cannot review leave", rbac.RoleTimetableAdmin, "leave", "review", false},
		{"unknown role denied", "student", "leave", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				EmployeeID: "emp-1",
				Role:       tc.role,
				Resource:   tc.resource,
				Action:     tc.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
