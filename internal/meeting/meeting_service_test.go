package meeting

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"faculty-ops/internal/employee"
	"faculty-ops/internal/messaging/kafka"
)

type fakeRepo struct {
	createFn   func(ctx context.Context, m *Meeting) error
	findAllFn  func(ctx context.Context) ([]Meeting, error)
	findByIDFn func(ctx context.Context, id string) (*Meeting, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, m *Meeting) error { return f.createFn(ctx, m) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Meeting, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Meeting, error) {
	return f.findByIDFn(ctx, id)
}

type fakeEmployeeRepo struct {
	findAllFn func(ctx context.Context) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.findAllFn(ctx)
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindByName(ctx context.Context, name string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) RecordTaken(ctx context.Context, id, leaveType string, days int) (bool, error) {
	return false, nil
}

type fakeNotifier struct {
	failFor map[uuid.UUID]error
	calls   map[uuid.UUID]string
}

func (f *fakeNotifier) Notify(ctx context.Context, recipientID uuid.UUID, message string) error {
	if err, ok := f.failFor[recipientID]; ok {
		return err
	}
	if f.calls == nil {
		f.calls = map[uuid.UUID]string{}
	}
	f.calls[recipientID] = message
	return nil
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func TestService_Schedule_FanOutSkipsOrganizer(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	organizer := employee.Employee{ID: uuid.New(), Email: "hod@college.edu", Role: employee.RoleHOD}
	staff := []employee.Employee{
		organizer,
		{ID: uuid.New(), Email: "a@college.edu", Role: employee.RoleFaculty},
		{ID: uuid.New(), Email: "b@college.edu", Role: employee.RoleFaculty},
		{ID: uuid.New(), Email: "hr@college.edu", Role: employee.RoleHR},
	}

	var saved Meeting
	repo := &fakeRepo{
		createFn: func(ctx context.Context, m *Meeting) error { saved = *m; return nil },
	}
	empRepo := &fakeEmployeeRepo{
		findAllFn: func(ctx context.Context) ([]employee.Employee, error) { return staff, nil },
	}
	notifier := &fakeNotifier{}
	outbox := &fakeOutbox{}

	svc := NewService(db, repo, empRepo, notifier, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Schedule(context.Background(), organizer.ID.String(), employee.RoleHOD, ScheduleMeetingRequest{
		Subject:  "Exam planning",
		Date:     "2024-06-10",
		Time:     "10:30",
		Location: "Seminar Hall",
	})

	assert.NoError(t, err)
	assert.Equal(t, "HOD", resp.OrganizerRole)
	assert.Len(t, saved.Attendees, 4, "roster snapshot includes the organizer")

	assert.Len(t, notifier.calls, 3, "one notification per employee except the organizer")
	_, notifiedOrganizer := notifier.calls[organizer.ID]
	assert.False(t, notifiedOrganizer)
	for _, message := range notifier.calls {
		assert.Equal(t, "New meeting scheduled by HOD: Exam planning on 2024-06-10 at 10:30. Location: Seminar Hall.", message)
	}

	assert.Len(t, outbox.events, 1)
	assert.Equal(t, "meeting_scheduled", outbox.events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Schedule_RecipientFailureDoesNotRollBack(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	organizer := uuid.New()
	flaky := uuid.New()
	steady := uuid.New()
	staff := []employee.Employee{
		{ID: organizer, Email: "p@college.edu", Role: employee.RolePrincipal},
		{ID: flaky, Email: "f@college.edu", Role: employee.RoleFaculty},
		{ID: steady, Email: "s@college.edu", Role: employee.RoleFaculty},
	}

	repo := &fakeRepo{createFn: func(ctx context.Context, m *Meeting) error { return nil }}
	empRepo := &fakeEmployeeRepo{
		findAllFn: func(ctx context.Context) ([]employee.Employee, error) { return staff, nil },
	}
	notifier := &fakeNotifier{failFor: map[uuid.UUID]error{flaky: errors.New("write refused")}}

	svc := NewService(db, repo, empRepo, notifier, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Schedule(context.Background(), organizer.String(), employee.RolePrincipal, ScheduleMeetingRequest{
		Subject:  "Budget review",
		Date:     "2024-07-01",
		Time:     "14:00",
		Location: "Board Room",
	})

	assert.NoError(t, err, "fan-out failure never fails the schedule call")
	assert.NotEmpty(t, resp.ID)
	assert.Contains(t, notifier.calls, steady)
	assert.NoError(t, mock.ExpectationsWereMet())
}
