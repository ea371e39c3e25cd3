package store_test

import (
	"context"
	"testing"

	"planner/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestGormStore_Get_Found(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	s := store.NewGormStore(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "kv_entries" WHERE key = .* LIMIT .*`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow(store.KeyCourses, `[{"id":"1","name":"Algorithms"}]`, "2024-03-01 00:00:00"))

	v, ok, err := s.Get(context.Background(), store.KeyCourses)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1","name":"Algorithms"}]`, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Get_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	s := store.NewGormStore(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "kv_entries" WHERE key = .* LIMIT .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	v, ok, err := s.Get(context.Background(), store.KeyTasksByDate)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Get_Error(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	s := store.NewGormStore(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "kv_entries" WHERE key = .* LIMIT .*`).
		WillReturnError(assert.AnError)

	_, ok, err := s.Get(context.Background(), store.KeyTasksByDate)

	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Set_Upserts(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	s := store.NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "kv_entries" .* ON CONFLICT \("key"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Set(context.Background(), store.KeyCourseColors, `{"1":"hsl(120, 70%, 70%)"}`)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Set_Error(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	s := store.NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "kv_entries"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := s.Set(context.Background(), store.KeyCourseColors, `{}`)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
