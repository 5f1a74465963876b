package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "faculty-ops/internal/auth/errors"
	"faculty-ops/internal/employee"
)

type fakeEmployeeRepo struct {
	byEmail map[string]*employee.Employee
	byID    map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if e, ok := f.byEmail[email]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindByName(ctx context.Context, name string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) RecordTaken(ctx context.Context, id, leaveType string, days int) (bool, error) {
	return false, nil
}

func seededRepo(t *testing.T, password string) (*fakeEmployeeRepo, *employee.Employee) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	e := &employee.Employee{
		ID:       uuid.New(),
		Email:    "asha@college.edu",
		Name:     "Asha Verma",
		Role:     employee.RoleFaculty,
		Password: string(hashed),
	}
	return &fakeEmployeeRepo{
		byEmail: map[string]*employee.Employee{e.Email: e},
		byID:    map[string]*employee.Employee{e.ID.String(): e},
	}, e
}

func TestService_LoginAndRefresh(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo, e := seededRepo(t, "pass1234")
	svc := NewService(repo)
	ctx := context.Background()

	access, refresh, resp, err := svc.Login(ctx, e.Email, "pass1234")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, e.ID.String(), resp.ID)
	assert.Equal(t, employee.RoleFaculty, resp.Role)

	newAccess, newRefresh, refreshed, err := svc.RefreshToken(ctx, refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, e.Email, refreshed.Email)
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo, e := seededRepo(t, "pass1234")
	svc := NewService(repo)

	_, _, _, err := svc.Login(context.Background(), e.Email, "wrong")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "nobody@college.edu", "pass1234")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_RefreshToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo, _ := seededRepo(t, "pass1234")
	svc := NewService(repo)

	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestService_GetMe(t *testing.T) {
	repo, e := seededRepo(t, "pass1234")
	svc := NewService(repo)

	resp, err := svc.GetMe(context.Background(), e.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, e.Name, resp.Name)

	_, err = svc.GetMe(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, autherrors.ErrInvalidEmployeeID)

	_, err = svc.GetMe(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, autherrors.ErrEmployeeNotFound)
}
