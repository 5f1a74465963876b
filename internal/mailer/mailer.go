package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// MeetingInvite carries the fields rendered into an invite email.
type MeetingInvite struct {
	Subject  string
	Date     string
	Time     string
	Location string
	Role     string
}

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	SendMeetingInvite(to []string, invite MeetingInvite) error
}

type sendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
	logger *zap.Logger
}

func NewSendgridMailer(apiKey, appName, fromEmail string, logger ...*zap.Logger) Mailer {
	l := zap.L().Named("mailer.sendgrid")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer.sendgrid")
	}
	return &sendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(appName, fromEmail),
		logger: l,
	}
}

func (m *sendgridMailer) SendMeetingInvite(to []string, invite MeetingInvite) error {
	if len(to) == 0 {
		return nil
	}

	p := sgmail.NewPersonalization()
	p.Subject = fmt.Sprintf("[Campus] Meeting: %s", invite.Subject)
	for _, addr := range to {
		p.AddBCCs(sgmail.NewEmail("", addr))
	}
	// SendGrid requires at least one To; BCC the roster so recipients
	// do not see each other's addresses.
	p.AddTos(m.from)

	body := fmt.Sprintf(
		"New meeting scheduled by %s: %s on %s at %s. Location: %s.",
		invite.Role, invite.Subject, invite.Date, invite.Time, invite.Location,
	)

	msg := sgmail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.AddPersonalizations(p)
	msg.AddContent(sgmail.NewContent("text/plain", body))

	resp, err := m.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected invite: status %d", resp.StatusCode)
	}

	m.logger.Info("meeting invite sent",
		zap.Int("recipients", len(to)),
		zap.String("subject", invite.Subject),
	)
	return nil
}
