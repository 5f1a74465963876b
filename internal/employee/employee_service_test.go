package employee

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	employeeerrors "faculty-ops/internal/employee/errors"
)

type fakeRepo struct {
	createFn      func(ctx context.Context, e *Employee) error
	findAllFn     func(ctx context.Context) ([]Employee, error)
	findByIDFn    func(ctx context.Context, id string) (*Employee, error)
	findByEmailFn func(ctx context.Context, email string) (*Employee, error)
	findByNameFn  func(ctx context.Context, name string) (*Employee, error)
	recordTakenFn func(ctx context.Context, id, leaveType string, days int) (bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, e *Employee) error { return f.createFn(ctx, e) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeRepo) FindByName(ctx context.Context, name string) (*Employee, error) {
	return f.findByNameFn(ctx, name)
}
func (f *fakeRepo) RecordTaken(ctx context.Context, id, leaveType string, days int) (bool, error) {
	return f.recordTakenFn(ctx, id, leaveType, days)
}

func TestService_Create(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var saved Employee
	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *Employee) error { saved = *e; return nil },
		findByEmailFn: func(ctx context.Context, email string) (*Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(db, repo)

	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Email:    "Asha@College.edu ",
		Name:     " Asha Verma ",
		Role:     RoleFaculty,
		Password: "pass1234",
	})

	assert.NoError(t, err)
	assert.Equal(t, "asha@college.edu", resp.Email)
	assert.Equal(t, "Asha Verma", resp.Name)
	assert.Equal(t, 0, resp.CasualLeavesTaken)

	assert.NotEqual(t, "pass1234", saved.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("pass1234")))
}

func TestService_Create_EmailTaken(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findByEmailFn: func(ctx context.Context, email string) (*Employee, error) {
			return &Employee{ID: uuid.New()}, nil
		},
	}

	svc := NewService(db, repo)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Email:    "asha@college.edu",
		Name:     "Asha Verma",
		Role:     RoleFaculty,
		Password: "pass1234",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
}

func TestService_Create_InvalidRole(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Email:    "asha@college.edu",
		Name:     "Asha Verma",
		Role:     "registrar",
		Password: "pass1234",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidRole)
}

func TestService_GetLeaveBalances(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, lookup string) (*Employee, error) {
			return &Employee{
				ID:                 id,
				CasualLeavesTaken:  4,
				MedicalLeavesTaken: 10,
			}, nil
		},
	}

	svc := NewService(db, repo)

	balances, err := svc.GetLeaveBalances(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Len(t, balances, 3)

	byType := map[string]LeaveBalanceResponse{}
	for _, b := range balances {
		byType[b.LeaveType] = b
	}
	assert.Equal(t, 4, byType[LeaveCasual].Taken)
	assert.Equal(t, 15, byType[LeaveCasual].Allowed)
	assert.Equal(t, 10, byType[LeaveMedical].Taken)
	assert.Equal(t, 10, byType[LeaveMedical].Allowed)
	assert.Equal(t, 0, byType[LeaveMaternity].Taken)
	assert.Equal(t, 1, byType[LeaveMaternity].Allowed)
}
