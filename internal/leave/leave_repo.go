package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Application) error
	FindByID(ctx context.Context, id string) (*Application, error)
	FindByStatus(ctx context.Context, status string) ([]Application, error)
	FindByFaculty(ctx context.Context, facultyID string) ([]Application, error)
	Update(ctx context.Context, a *Application) error
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

func (r *repository) Create(ctx context.Context, a *Application) error {
	// Inside a review transaction the row must ride the same tx as the
	// ledger update, so raw SQL is used there.
	if r.tx != nil {
		query := `
            INSERT INTO leave_applications (
                id, faculty_id, faculty_name, leave_type, leave_duration,
                from_date, to_date, status, review_history, created_at, updated_at
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
        `
		_, err := r.tx.ExecContext(
			ctx, query,
			a.ID, a.FacultyID, a.FacultyName, a.LeaveType, a.LeaveDuration,
			a.FromDate, a.ToDate, a.Status, a.ReviewHistory,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]Application, error) {
	var applications []Application
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&applications).Error
	return applications, err
}

func (r *repository) FindByFaculty(ctx context.Context, facultyID string) ([]Application, error) {
	var applications []Application
	err := r.db.WithContext(ctx).
		Where("faculty_id = ?", facultyID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *repository) Update(ctx context.Context, a *Application) error {
	if r.tx != nil {
		query := `
            UPDATE leave_applications
            SET status = $2, review_history = $3, updated_at = NOW()
            WHERE id = $1
        `
		_, err := r.tx.ExecContext(ctx, query, a.ID, a.Status, a.ReviewHistory)
		return err
	}
	return r.db.WithContext(ctx).Save(a).Error
}
