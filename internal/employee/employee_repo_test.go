package employee

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRepository_RecordTaken_WithinLimit(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New().String()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE employees").
		WithArgs(id, 3, 15).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewRepository(nil).WithTx(tx)
	applied, err := repo.RecordTaken(context.Background(), id, LeaveCasual, 3)
	assert.NoError(t, err)
	assert.True(t, applied)

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecordTaken_QuotaExceeded(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New().String()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE employees").
		WithArgs(id, 2, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewRepository(nil).WithTx(tx)
	applied, err := repo.RecordTaken(context.Background(), id, LeaveMaternity, 2)
	assert.NoError(t, err)
	assert.False(t, applied, "conditional update touches no row past the cap")

	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecordTaken_UnknownType(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.RecordTaken(context.Background(), uuid.New().String(), "sabbatical", 1)
	assert.Error(t, err)
}
