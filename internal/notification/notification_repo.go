package notification

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, n *Notification) error
	FindUnclearedByFaculty(ctx context.Context, facultyID string) ([]Notification, error)
	MarkAllCleared(ctx context.Context, facultyID string) (int64, error)
	ListMarkedMeetingIDs(ctx context.Context, employeeID string) (map[uuid.UUID]struct{}, error)
	UpsertMarker(ctx context.Context, employeeID, meetingID uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, n *Notification) error {
	if r.tx != nil {
		query := `
            INSERT INTO notifications (id, faculty_id, message, type, is_cleared, created_at)
            VALUES ($1, $2, $3, $4, $5, NOW())
        `
		_, err := r.tx.ExecContext(ctx, query, n.ID, n.FacultyID, n.Message, n.Type, n.IsCleared)
		return err
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindUnclearedByFaculty(ctx context.Context, facultyID string) ([]Notification, error) {
	var notifications []Notification
	err := r.db.WithContext(ctx).
		Where("faculty_id = ? AND is_cleared = false", facultyID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *repository) MarkAllCleared(ctx context.Context, facultyID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("faculty_id = ? AND is_cleared = false", facultyID).
		Update("is_cleared", true)
	return res.RowsAffected, res.Error
}

func (r *repository) ListMarkedMeetingIDs(ctx context.Context, employeeID string) (map[uuid.UUID]struct{}, error) {
	var markers []ClearedMeetingNotification
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Find(&markers).Error
	if err != nil {
		return nil, err
	}

	marked := make(map[uuid.UUID]struct{}, len(markers))
	for _, m := range markers {
		marked[m.MeetingID] = struct{}{}
	}
	return marked, nil
}

// UpsertMarker tolerates a concurrent clear inserting the same marker;
// the duplicate key violation is swallowed.
func (r *repository) UpsertMarker(ctx context.Context, employeeID, meetingID uuid.UUID) error {
	marker := ClearedMeetingNotification{
		EmployeeID: employeeID,
		MeetingID:  meetingID,
		ClearedAt:  time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).Create(&marker).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil
	}
	return err
}
