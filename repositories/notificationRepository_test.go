package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func notificationColumns() []string {
	return []string{"id", "user_id", "title", "message", "type", "is_read", "related_id", "related_type", "created_at"}
}

func TestMarkAllReadOnlyTouchesUnreadRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "notification" SET "is_read"=$1 WHERE user_id = $2 AND is_read = $3`)).
		WithArgs(true, "user-1", false).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	updated, err := repo.MarkAllRead(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllReadIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	// Everything is already read; the filtered update matches nothing.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "notification" SET "is_read"=$1 WHERE user_id = $2 AND is_read = $3`)).
		WithArgs(true, "user-1", false).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	updated, err := repo.MarkAllRead(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReadReturnsUpdatedNotification(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "notification" SET "is_read"=$1 WHERE id = $2`)).
		WithArgs(true, "n1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "notification" WHERE id = $1`)).
		WithArgs("n1", 1).
		WillReturnRows(sqlmock.NewRows(notificationColumns()).
			AddRow("n1", "user-1", "Report uploaded", "Pending review.", "info", true, "", "", time.Now()))

	notification, err := repo.MarkRead(context.Background(), "n1")
	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.True(t, notification.IsRead)
	assert.Equal(t, "user-1", notification.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReadOnMissingNotificationReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "notification" SET "is_read"=$1 WHERE id = $2`)).
		WithArgs(true, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "notification" WHERE id = $1`)).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows(notificationColumns()))

	notification, err := repo.MarkRead(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, notification)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUnreadByUserFiltersAndOrders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "notification" WHERE user_id = $1 AND is_read = $2 ORDER BY created_at DESC`)).
		WithArgs("user-1", false).
		WillReturnRows(sqlmock.NewRows(notificationColumns()).
			AddRow("n2", "user-1", "Transfer approved", "ICU transfer approved.", "success", false, "t1", "patient_transfer", time.Now()).
			AddRow("n1", "user-1", "Report uploaded", "Pending review.", "info", false, "", "", time.Now().Add(-time.Hour)))

	notifications, err := repo.GetUnreadByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "n2", notifications[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
