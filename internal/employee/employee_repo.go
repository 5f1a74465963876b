package employee

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var leaveColumn = map[string]string{
	LeaveCasual:    "casual_leaves_taken",
	LeaveMedical:   "medical_leaves_taken",
	LeaveMaternity: "maternity_leaves_taken",
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindByName(ctx context.Context, name string) (*Employee, error)
	// RecordTaken applies the ledger increment as one conditional update:
	// it succeeds only if taken + days stays within the category limit.
	// Returns false when the quota would be exceeded.
	RecordTaken(ctx context.Context, id, leaveType string, days int) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "email = ?", email).Error
	return &e, err
}

// FindByName matches case-insensitively after trimming, the way the
// timetable importer resolves faculty names.
func (r *repository) FindByName(ctx context.Context, name string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(name)) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&e).Error
	return &e, err
}

func (r *repository) RecordTaken(ctx context.Context, id, leaveType string, days int) (bool, error) {
	column, ok := leaveColumn[leaveType]
	if !ok {
		return false, fmt.Errorf("unknown leave type: %s", leaveType)
	}
	limit := AllowedLimit[leaveType]

	// Raw SQL so the quota check and the increment are one atomic
	// statement. Two racing submissions cannot both slip under the cap.
	if r.tx != nil {
		query := fmt.Sprintf(`
			UPDATE employees
			SET %s = %s + $2, updated_at = NOW()
			WHERE id = $1 AND %s + $2 <= $3
		`, column, column, column)
		res, err := r.tx.ExecContext(ctx, query, id, days, limit)
		if err != nil {
			return false, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return false, err
		}
		return affected == 1, nil
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = %s + ?, updated_at = NOW()
		WHERE id = ? AND %s + ? <= ?
	`, column, column, column)
	res := r.db.WithContext(ctx).Exec(query, days, id, days, limit)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
