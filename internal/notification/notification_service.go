package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"faculty-ops/internal/meeting"
	notificationerrors "faculty-ops/internal/notification/errors"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	// Notify stores one notification row for the recipient. It backs
	// both leave decision messages and meeting fan-out.
	Notify(ctx context.Context, facultyID uuid.UUID, message string) error
	Feed(ctx context.Context, viewerID string) ([]FeedItem, error)
	Clear(ctx context.Context, viewerID string) (ClearFeedResponse, error)
}

type service struct {
	repo        Repository
	meetingRepo meeting.Repository
	logger      *zap.Logger
}

func NewService(repo Repository, meetingRepo meeting.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, meetingRepo: meetingRepo, logger: l}
}

func (s *service) Notify(ctx context.Context, facultyID uuid.UUID, message string) error {
	n := &Notification{
		ID:        uuid.New(),
		FacultyID: facultyID,
		Message:   message,
		Type:      TypeLeave,
		IsCleared: false,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("notify failed",
			zap.String("faculty_id", facultyID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Feed returns the viewer's uncleared stored notifications plus an
// entry per meeting the viewer has not dismissed. Meeting entries are
// computed against the markers table, never stored.
func (s *service) Feed(ctx context.Context, viewerID string) ([]FeedItem, error) {
	viewerUUID, err := uuid.Parse(viewerID)
	if err != nil {
		return nil, notificationerrors.ErrInvalidViewerID
	}

	stored, err := s.repo.FindUnclearedByFaculty(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(stored))
	for _, n := range stored {
		items = append(items, FeedItem{
			ID:        n.ID.String(),
			Type:      n.Type,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}

	visible, err := s.visibleMeetings(ctx, viewerUUID)
	if err != nil {
		return nil, err
	}
	for _, m := range visible {
		items = append(items, FeedItem{
			ID:   m.ID.String(),
			Type: TypeMeeting,
			Message: fmt.Sprintf(
				"New meeting scheduled: %s on %s at %s. Location: %s.",
				m.Subject, m.Date, m.Time, m.Location,
			),
			CreatedAt: m.CreatedAt,
		})
	}

	return items, nil
}

// Clear flips the viewer's stored notifications to cleared and marks
// every currently-visible meeting as dismissed. Other viewers' feeds
// are untouched.
func (s *service) Clear(ctx context.Context, viewerID string) (ClearFeedResponse, error) {
	viewerUUID, err := uuid.Parse(viewerID)
	if err != nil {
		return ClearFeedResponse{}, notificationerrors.ErrInvalidViewerID
	}

	cleared, err := s.repo.MarkAllCleared(ctx, viewerID)
	if err != nil {
		s.logger.Error("clear notifications failed",
			zap.String("viewer_id", viewerID),
			zap.Error(err),
		)
		return ClearFeedResponse{}, err
	}

	visible, err := s.visibleMeetings(ctx, viewerUUID)
	if err != nil {
		return ClearFeedResponse{}, err
	}

	marked := 0
	for _, m := range visible {
		if err := s.repo.UpsertMarker(ctx, viewerUUID, m.ID); err != nil {
			s.logger.Error("clear meeting marker failed",
				zap.String("viewer_id", viewerID),
				zap.String("meeting_id", m.ID.String()),
				zap.Error(err),
			)
			return ClearFeedResponse{}, err
		}
		marked++
	}

	s.logger.Info("feed cleared",
		zap.String("viewer_id", viewerID),
		zap.Int64("cleared_notifications", cleared),
		zap.Int("marked_meetings", marked),
	)

	return ClearFeedResponse{
		ClearedNotifications: int(cleared),
		MarkedMeetings:       marked,
	}, nil
}

func (s *service) visibleMeetings(ctx context.Context, viewerID uuid.UUID) ([]meeting.Meeting, error) {
	meetings, err := s.meetingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	markers, err := s.repo.ListMarkedMeetingIDs(ctx, viewerID.String())
	if err != nil {
		return nil, err
	}

	visible := make([]meeting.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if _, dismissed := markers[m.ID]; dismissed {
			continue
		}
		visible = append(visible, m)
	}
	return visible, nil
}
