package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage-failure paths are driven through sqlmock: the in-memory database
// cannot be made to fail on demand.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open error: %v", err)
	}
	return db, mock, sqlDB
}

func TestListAllApplicationsPropagatesStorageError(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "applications"`).
		WillReturnError(errors.New("connection reset"))

	svc := NewApplicationService(db, testLogger())
	_, err := svc.ListAllApplications(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrJobNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListJobsForUserRollsBackOnStorageError(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	svc := NewApplicationService(db, testLogger())
	_, err := svc.ListJobsForUser(context.Background(), "u-1")
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRollsBackOnStorageError(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	svc := NewApplicationService(db, testLogger())
	_, _, err := svc.Apply(context.Background(), "j-1", "u-1")
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
