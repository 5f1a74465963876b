package meeting

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=meeting_repo.go -destination=mock/meeting_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, m *Meeting) error
	FindAll(ctx context.Context) ([]Meeting, error)
	FindByID(ctx context.Context, id string) (*Meeting, error)
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

func (r *repository) Create(ctx context.Context, m *Meeting) error {
	// Rides the same tx as the outbox insert when scheduling.
	if r.tx != nil {
		query := `
            INSERT INTO meetings (
                id, subject, date, time, location,
                organizer_id, organizer_role, attendees, created_at
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
        `
		_, err := r.tx.ExecContext(
			ctx, query,
			m.ID, m.Subject, m.Date, m.Time, m.Location,
			m.OrganizerID, m.OrganizerRole, m.Attendees,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Meeting, error) {
	var meetings []Meeting
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&meetings).Error
	return meetings, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Meeting, error) {
	var m Meeting
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}
