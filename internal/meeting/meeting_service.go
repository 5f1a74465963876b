package meeting

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"faculty-ops/internal/employee"
	"faculty-ops/internal/events"
	meetingerrors "faculty-ops/internal/meeting/errors"
	"faculty-ops/internal/messaging/kafka"
	"faculty-ops/internal/shared/contextutil"
)

var displayRole = map[string]string{
	employee.RoleHOD:       "HOD",
	employee.RoleHR:        "HR",
	employee.RolePrincipal: "Principal",
}

// RecipientNotifier writes one in-app notification per fan-out target.
// Declared here so the notification package can satisfy it without an
// import cycle.
type RecipientNotifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, message string) error
}

//go:generate mockgen -source=meeting_service.go -destination=mock/meeting_service_mock.go -package=mock
type Service interface {
	Schedule(ctx context.Context, organizerID, organizerRole string, req ScheduleMeetingRequest) (MeetingResponse, error)
	List(ctx context.Context) ([]MeetingResponse, error)
	GetByID(ctx context.Context, id string) (MeetingResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	notifier     RecipientNotifier
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	notifier RecipientNotifier,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("meeting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("meeting.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
		outbox:       outboxRepo,
		logger:       l,
	}
}

func (s *service) Schedule(ctx context.Context, organizerID, organizerRole string, req ScheduleMeetingRequest) (MeetingResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("schedule meeting requested",
		zap.String("request_id", rid),
		zap.String("organizer_id", organizerID),
		zap.String("subject", req.Subject),
	)

	organizerUUID, err := uuid.Parse(organizerID)
	if err != nil {
		return MeetingResponse{}, meetingerrors.ErrInvalidOrganizerID
	}

	roster, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("schedule meeting roster lookup failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	attendees := make([]string, 0, len(roster))
	recipientIDs := make([]uuid.UUID, 0, len(roster))
	recipientEmails := make([]string, 0, len(roster))
	for _, e := range roster {
		attendees = append(attendees, e.ID.String())
		if e.ID == organizerUUID {
			continue
		}
		recipientIDs = append(recipientIDs, e.ID)
		recipientEmails = append(recipientEmails, e.Email)
	}

	role := organizerRole
	if label, ok := displayRole[organizerRole]; ok {
		role = label
	}

	m := &Meeting{
		ID:            uuid.New(),
		Subject:       req.Subject,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		OrganizerID:   organizerUUID,
		OrganizerRole: role,
		Attendees:     attendees,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("schedule meeting begin tx failed", zap.Error(err))
		return MeetingResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, m); err != nil {
		s.logger.Error("schedule meeting persist failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	if s.outbox != nil {
		if err := s.emitScheduled(ctx, tx, m, recipientEmails, rid); err != nil {
			s.logger.Error("schedule meeting outbox persist failed", zap.Error(err))
			return MeetingResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("schedule meeting commit failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	s.logger.Info("schedule meeting success",
		zap.String("request_id", rid),
		zap.String("meeting_id", m.ID.String()),
		zap.Int("recipients", len(recipientIDs)),
	)

	// Fan-out is best effort: a recipient write failure is logged and the
	// meeting stands.
	if s.notifier != nil {
		message := fmt.Sprintf(
			"New meeting scheduled by %s: %s on %s at %s. Location: %s.",
			role, m.Subject, m.Date, m.Time, m.Location,
		)
		for _, recipientID := range recipientIDs {
			if err := s.notifier.Notify(ctx, recipientID, message); err != nil {
				s.logger.Error("schedule meeting fan-out failed",
					zap.String("meeting_id", m.ID.String()),
					zap.String("recipient_id", recipientID.String()),
					zap.Error(err),
				)
			}
		}
	}

	return mapToResponse(*m), nil
}

func (s *service) emitScheduled(ctx context.Context, tx *sql.Tx, m *Meeting, recipientEmails []string, rid string) error {
	event := events.MeetingScheduledEvent{
		EventType:       "meeting_scheduled",
		RequestID:       rid,
		MeetingID:       m.ID.String(),
		Subject:         m.Subject,
		Date:            m.Date,
		Time:            m.Time,
		Location:        m.Location,
		OrganizerID:     m.OrganizerID.String(),
		OrganizerRole:   m.OrganizerRole,
		RecipientEmails: recipientEmails,
		OccurredAt:      time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "meeting",
		AggregateID:   m.ID.String(),
		EventType:     event.EventType,
		Topic:         events.MeetingScheduledTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) List(ctx context.Context) ([]MeetingResponse, error) {
	meetings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]MeetingResponse, len(meetings))
	for i, m := range meetings {
		resp[i] = mapToResponse(m)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (MeetingResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeetingResponse{}, meetingerrors.ErrMeetingNotFound
		}
		return MeetingResponse{}, err
	}
	return mapToResponse(*m), nil
}

func mapToResponse(m Meeting) MeetingResponse {
	return MeetingResponse{
		ID:            m.ID.String(),
		Subject:       m.Subject,
		Date:          m.Date,
		Time:          m.Time,
		Location:      m.Location,
		OrganizerID:   m.OrganizerID.String(),
		OrganizerRole: m.OrganizerRole,
		Attendees:     m.Attendees,
		CreatedAt:     m.CreatedAt,
	}
}
