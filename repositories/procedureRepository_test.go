package repositories

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func procedureColumns() []string {
	return []string{"id", "patient_id", "procedure_type", "title", "description",
		"scheduled_date", "performed_by_id", "status", "notes", "created_at", "updated_at"}
}

func TestGetByDateOnEmptyDayYieldsEmptyJSONArray(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProcedureRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "procedure" WHERE scheduled_date >= $1 AND scheduled_date < $2`)).
		WillReturnRows(sqlmock.NewRows(procedureColumns()))

	procedures, err := repo.GetByDate(context.Background(), time.Now())
	require.NoError(t, err)
	require.NotNil(t, procedures)
	assert.Len(t, procedures, 0)

	// The empty day must serialize as [], not null.
	body, err := json.Marshal(procedures)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByDateBoundsTheDayWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProcedureRepository(db)

	date := time.Date(2026, time.August, 30, 14, 30, 0, 0, time.UTC)
	startOfDay := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "procedure" WHERE scheduled_date >= $1 AND scheduled_date < $2 ORDER BY scheduled_date`)).
		WithArgs(startOfDay, endOfDay).
		WillReturnRows(sqlmock.NewRows(procedureColumns()).
			AddRow("proc-1", "p1", "bronchoscopy", "Diagnostic bronchoscopy", "",
				startOfDay.Add(9*time.Hour), nil, "scheduled", "", time.Now(), time.Now()))

	procedures, err := repo.GetByDate(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, procedures, 1)
	assert.Equal(t, "proc-1", procedures[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
