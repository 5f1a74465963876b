package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"faculty-ops/internal/employee"
	"faculty-ops/internal/events"
	leaveerrors "faculty-ops/internal/leave/errors"
	"faculty-ops/internal/messaging/kafka"
	"faculty-ops/internal/shared/contextutil"
)

const (
	StatusPending       = "pending"
	StatusApproved      = "approved" // HOD stage cleared
	StatusApprovedByHR  = "approved by HR"
	StatusFullyApproved = "fully approved"
	StatusRejected      = "rejected"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// reviewerStage maps each reviewer role to the status whose queue it
// owns. A reviewer may only act on an application sitting in its stage.
var reviewerStage = map[string]string{
	employee.RoleHOD:       StatusPending,
	employee.RoleHR:        StatusApproved,
	employee.RolePrincipal: StatusApprovedByHR,
}

var approvalTarget = map[string]string{
	employee.RoleHOD:       StatusApproved,
	employee.RoleHR:        StatusApprovedByHR,
	employee.RolePrincipal: StatusFullyApproved,
}

var roleLabel = map[string]string{
	employee.RoleHOD:       "HOD",
	employee.RoleHR:        "HR",
	employee.RolePrincipal: "Principal",
}

var rejectionMessage = map[string]string{
	employee.RoleHOD:       "Your leave application has been rejected by HOD.",
	employee.RoleHR:        "Your leave application has been rejected by HR.",
	employee.RolePrincipal: "Your leave application has been rejected by the Principal.",
}

const fullyApprovedMessage = "Your leave application has been fully approved by HOD, HR, and Principal."

// nextStatus is the single transition table: (status, role, action) ->
// status. Terminal statuses own no stage, so nothing transitions out of
// them.
func nextStatus(current, role, action string) (string, bool) {
	stage, ok := reviewerStage[role]
	if !ok || stage != current {
		return "", false
	}

	switch action {
	case ActionApprove:
		return approvalTarget[role], true
	case ActionReject:
		return StatusRejected, true
	default:
		return "", false
	}
}

// IsTerminal reports whether no further review can touch the application.
func IsTerminal(status string) bool {
	return status == StatusFullyApproved || status == StatusRejected
}

// Notifier delivers applicant-facing decision messages. Declared here so
// the notification package can satisfy it without an import cycle.
type Notifier interface {
	Notify(ctx context.Context, facultyID uuid.UUID, message string) error
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actorID string, req SubmitLeaveRequest) (ApplicationResponse, error)
	Approve(ctx context.Context, actorID, role, id string) (ApplicationResponse, error)
	Reject(ctx context.Context, actorID, role, id string) (ApplicationResponse, error)
	GetByID(ctx context.Context, id string) (ApplicationResponse, error)
	ListPending(ctx context.Context, role string) ([]ApplicationResponse, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]ApplicationResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	notifier     Notifier
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	notifier Notifier,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, employeeRepo, notifier, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	notifier Notifier,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
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

func (s *service) Submit(ctx context.Context, actorID string, req SubmitLeaveRequest) (ApplicationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("leave_type", req.LeaveType),
		zap.String("leave_duration", req.LeaveDuration),
	)

	facultyUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ApplicationResponse{}, leaveerrors.ErrInvalidActorID
	}

	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		return ApplicationResponse{}, err
	}

	var toDate *time.Time
	if req.LeaveDuration == DurationMultiple {
		if req.ToDate == "" {
			return ApplicationResponse{}, leaveerrors.ErrToDateRequired
		}
		parsed, err := parseDate(req.ToDate)
		if err != nil {
			return ApplicationResponse{}, err
		}
		toDate = &parsed
	}

	faculty, err := s.employeeRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, leaveerrors.ErrFacultyNotFound
		}
		s.logger.Error("submit leave faculty lookup failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	days := LeaveDays(req.LeaveDuration, fromDate, toDate)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	// Quota check and increment are one conditional update; the
	// application row is only written when it succeeds, all in one tx.
	applied, err := s.employeeRepo.WithTx(tx).RecordTaken(ctx, actorID, req.LeaveType, days)
	if err != nil {
		s.logger.Error("submit leave record taken failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	if !applied {
		s.logger.Warn("submit leave quota exceeded",
			zap.String("faculty_id", actorID),
			zap.String("leave_type", req.LeaveType),
			zap.Int("leave_days", days),
		)
		return ApplicationResponse{}, leaveerrors.LimitExceeded(req.LeaveType)
	}

	a := &Application{
		ID:            uuid.New(),
		FacultyID:     facultyUUID,
		FacultyName:   faculty.Name,
		LeaveType:     req.LeaveType,
		LeaveDuration: req.LeaveDuration,
		FromDate:      fromDate,
		ToDate:        toDate,
		Status:        StatusPending,
		ReviewHistory: []string{},
	}

	if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("request_id", rid),
		zap.String("application_id", a.ID.String()),
		zap.String("faculty_id", actorID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("leave_days", days),
	)

	return mapToResponse(*a), nil
}

func (s *service) Approve(ctx context.Context, actorID, role, id string) (ApplicationResponse, error) {
	return s.review(ctx, actorID, role, id, ActionApprove)
}

func (s *service) Reject(ctx context.Context, actorID, role, id string) (ApplicationResponse, error) {
	return s.review(ctx, actorID, role, id, ActionReject)
}

func (s *service) review(ctx context.Context, actorID, role, id, action string) (ApplicationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("review leave requested",
		zap.String("request_id", rid),
		zap.String("application_id", id),
		zap.String("actor_id", actorID),
		zap.String("role", role),
		zap.String("action", action),
	)

	if _, ok := reviewerStage[role]; !ok {
		return ApplicationResponse{}, leaveerrors.ErrNotAReviewer
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review leave begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, leaveerrors.ErrApplicationNotFound
		}
		return ApplicationResponse{}, err
	}

	target, ok := nextStatus(a.Status, role, action)
	if !ok {
		s.logger.Warn("review leave transition refused",
			zap.String("application_id", id),
			zap.String("from_status", a.Status),
			zap.String("role", role),
			zap.String("action", action),
		)
		return ApplicationResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	label := roleLabel[role]
	switch action {
	case ActionApprove:
		a.ReviewHistory = append(a.ReviewHistory, label+" approved")
	case ActionReject:
		a.ReviewHistory = append(a.ReviewHistory, label+" rejected")
	}
	a.Status = target

	if err := qtx.Update(ctx, a); err != nil {
		s.logger.Error("review leave persist failed",
			zap.String("application_id", id),
			zap.Error(err),
		)
		return ApplicationResponse{}, err
	}

	if IsTerminal(target) && s.outbox != nil {
		if err := s.emitDecision(ctx, tx, a, role, rid); err != nil {
			s.logger.Error("review leave outbox persist failed",
				zap.String("application_id", id),
				zap.Error(err),
			)
			return ApplicationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review leave commit failed",
			zap.String("application_id", id),
			zap.Error(err),
		)
		return ApplicationResponse{}, err
	}

	s.logger.Info("review leave success",
		zap.String("request_id", rid),
		zap.String("application_id", id),
		zap.String("status", target),
	)

	// Applicant-visible decisions: every rejection, and the terminal
	// Principal approval. HOD/HR approvals are intentionally silent.
	// A failed notification write is logged, never rolled back.
	if s.notifier != nil {
		var message string
		switch {
		case target == StatusRejected:
			message = rejectionMessage[role]
		case target == StatusFullyApproved:
			message = fullyApprovedMessage
		}
		if message != "" {
			if err := s.notifier.Notify(ctx, a.FacultyID, message); err != nil {
				s.logger.Error("review leave notify failed",
					zap.String("application_id", id),
					zap.String("faculty_id", a.FacultyID.String()),
					zap.Error(err),
				)
			}
		}
	}

	return mapToResponse(*a), nil
}

func (s *service) emitDecision(ctx context.Context, tx *sql.Tx, a *Application, role, rid string) error {
	event := events.LeaveDecisionEvent{
		EventType:     "leave_decision",
		RequestID:     rid,
		ApplicationID: a.ID.String(),
		FacultyID:     a.FacultyID.String(),
		LeaveType:     a.LeaveType,
		Status:        a.Status,
		DecidedByRole: role,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_application",
		AggregateID:   a.ID.String(),
		EventType:     event.EventType,
		Topic:         events.LeaveDecisionTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetByID(ctx context.Context, id string) (ApplicationResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, leaveerrors.ErrApplicationNotFound
		}
		return ApplicationResponse{}, err
	}
	return mapToResponse(*a), nil
}

// ListPending returns the reviewer's queue: applications sitting in the
// stage the role owns.
func (s *service) ListPending(ctx context.Context, role string) ([]ApplicationResponse, error) {
	stage, ok := reviewerStage[role]
	if !ok {
		return nil, leaveerrors.ErrNotAReviewer
	}

	applications, err := s.repo.FindByStatus(ctx, stage)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(applications), nil
}

func (s *service) ListByFaculty(ctx context.Context, facultyID string) ([]ApplicationResponse, error) {
	if _, err := uuid.Parse(facultyID); err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}

	applications, err := s.repo.FindByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(applications), nil
}

// LeaveDays counts the days a request spends: single-day mode is always
// 1; multiple-day mode is the inclusive span between the endpoints.
func LeaveDays(duration string, from time.Time, to *time.Time) int {
	if duration != DurationMultiple || to == nil {
		return 1
	}
	diff := to.Sub(from)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(a Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:            a.ID.String(),
		FacultyID:     a.FacultyID.String(),
		FacultyName:   a.FacultyName,
		LeaveType:     a.LeaveType,
		LeaveDuration: a.LeaveDuration,
		FromDate:      a.FromDate.Format("2006-01-02"),
		LeaveDays:     LeaveDays(a.LeaveDuration, a.FromDate, a.ToDate),
		Status:        a.Status,
		ReviewHistory: a.ReviewHistory,
	}
	if a.ToDate != nil {
		v := a.ToDate.Format("2006-01-02")
		resp.ToDate = &v
	}
	return resp
}

func mapToListResponse(applications []Application) []ApplicationResponse {
	resp := make([]ApplicationResponse, len(applications))
	for i, a := range applications {
		resp[i] = mapToResponse(a)
	}
	return resp
}
