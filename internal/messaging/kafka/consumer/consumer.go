package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"faculty-ops/internal/events"
	"faculty-ops/internal/mailer"
)

// ConsumeMeetingScheduled emails invites for meeting.scheduled events.
// A failed send is not committed so the event is retried; a malformed
// payload is committed and dropped.
func ConsumeMeetingScheduled(
	ctx context.Context,
	reader *kafkago.Reader,
	mail mailer.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.meeting_scheduled")
	log.Info("meeting scheduled consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("meeting scheduled consumer stopped")
				return
			}
			log.Error("fetch meeting scheduled message failed", zap.Error(err))
			continue
		}

		var event events.MeetingScheduledEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode meeting_scheduled event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		err = mail.SendMeetingInvite(event.RecipientEmails, mailer.MeetingInvite{
			Subject:  event.Subject,
			Date:     event.Date,
			Time:     event.Time,
			Location: event.Location,
			Role:     event.OrganizerRole,
		})
		if err != nil {
			log.Error("send meeting invite failed",
				zap.String("meeting_id", event.MeetingID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit meeting scheduled message failed", zap.Error(err))
			continue
		}

		log.Info("meeting invites dispatched",
			zap.String("meeting_id", event.MeetingID),
			zap.Int("recipients", len(event.RecipientEmails)),
		)
	}
}
