package timetable

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"faculty-ops/internal/employee"
	timetableerrors "faculty-ops/internal/timetable/errors"
)

type fakeRepo struct {
	saved []Entry
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) CreateBatch(ctx context.Context, entries []Entry) error {
	f.saved = append(f.saved, entries...)
	return nil
}
func (f *fakeRepo) FindByEmployee(ctx context.Context, employeeID string) ([]Entry, error) {
	var out []Entry
	for _, e := range f.saved {
		if e.EmployeeID.String() == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	byName map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindByName(ctx context.Context, name string) (*employee.Employee, error) {
	if e, ok := f.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) RecordTaken(ctx context.Context, id, leaveType string, days int) (bool, error) {
	return false, nil
}

func TestService_Import_CSV(t *testing.T) {
	known := &employee.Employee{ID: uuid.New(), Name: "Asha Verma"}
	repo := &fakeRepo{}
	empRepo := &fakeEmployeeRepo{byName: map[string]*employee.Employee{"asha verma": known}}

	svc := NewService(repo, empRepo)

	csvData := strings.Join([]string{
		"Faculty , Date ,Day,Time,Subject,Class",
		"Asha Verma,10/06/2024,Monday,09:00-10:00,Data Structures,CSE-3A",
		"Unknown Person,10/06/2024,Monday,10:00-11:00,Maths,CSE-3B",
		" asha verma ,11/06/2024,Tuesday,11:00-12:00,Algorithms,CSE-3A",
	}, "\n")

	report, err := svc.Import(context.Background(), "timetable.csv", strings.NewReader(csvData))

	assert.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 1, report.Skipped)
	assert.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "Unknown Person")

	assert.Len(t, repo.saved, 2, "unmatched row produces no write")
	assert.Equal(t, known.ID, repo.saved[0].EmployeeID)
	assert.Equal(t, "Data Structures", repo.saved[0].Subject)
	assert.Equal(t, "CSE-3A", repo.saved[0].Class)
}

func TestService_Import_XLSX(t *testing.T) {
	known := &employee.Employee{ID: uuid.New(), Name: "Ravi Kumar"}
	repo := &fakeRepo{}
	empRepo := &fakeEmployeeRepo{byName: map[string]*employee.Employee{"ravi kumar": known}}

	svc := NewService(repo, empRepo)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]string{
		{"faculty", "date", "day", "time", "subject", "class"},
		{"Ravi Kumar", "12/06/2024", "Wednesday", "09:00-10:00", "Operating Systems", "CSE-2A"},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, f.Write(&buf))

	report, err := svc.Import(context.Background(), "timetable.xlsx", &buf)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 0, report.Skipped)
	assert.Len(t, repo.saved, 1)
	assert.Equal(t, "Operating Systems", repo.saved[0].Subject)
}

func TestService_Import_RejectsBadInput(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeEmployeeRepo{})
	ctx := context.Background()

	_, err := svc.Import(ctx, "timetable.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, timetableerrors.ErrUnsupportedFileType)

	_, err = svc.Import(ctx, "timetable.csv", strings.NewReader("faculty,date,day,time,subject,class\n"))
	assert.ErrorIs(t, err, timetableerrors.ErrEmptyFile)

	_, err = svc.Import(ctx, "timetable.csv", strings.NewReader("faculty,date,day\na,b,c\n"))
	assert.ErrorIs(t, err, timetableerrors.ErrMissingColumns)
}

func TestService_ListForEmployee(t *testing.T) {
	known := &employee.Employee{ID: uuid.New(), Name: "Asha Verma"}
	repo := &fakeRepo{saved: []Entry{
		{ID: uuid.New(), EmployeeID: known.ID, Subject: "Data Structures", Date: "10/06/2024"},
		{ID: uuid.New(), EmployeeID: uuid.New(), Subject: "Someone else's slot"},
	}}

	svc := NewService(repo, &fakeEmployeeRepo{})

	entries, err := svc.ListForEmployee(context.Background(), known.ID.String())
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Data Structures", entries[0].Subject)

	_, err = svc.ListForEmployee(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, timetableerrors.ErrInvalidEmployeeID)
}
