package services

import (
	"PulmoCare/models"
	"PulmoCare/realtime"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransferStore struct {
	transfers map[string]*models.PatientTransfer
	created   *models.PatientTransfer
	updates   map[string]interface{}
	completed []string
}

func newFakeTransferStore(transfers ...*models.PatientTransfer) *fakeTransferStore {
	store := &fakeTransferStore{transfers: make(map[string]*models.PatientTransfer)}
	for _, transfer := range transfers {
		store.transfers[transfer.ID] = transfer
	}
	return store
}

func (s *fakeTransferStore) GetAll(ctx context.Context) ([]models.PatientTransfer, error) {
	var all []models.PatientTransfer
	for _, transfer := range s.transfers {
		all = append(all, *transfer)
	}
	return all, nil
}

func (s *fakeTransferStore) GetByStatus(ctx context.Context, status string) ([]models.PatientTransfer, error) {
	var matched []models.PatientTransfer
	for _, transfer := range s.transfers {
		if transfer.Status == status {
			matched = append(matched, *transfer)
		}
	}
	return matched, nil
}

func (s *fakeTransferStore) GetRecent(ctx context.Context, limit int) ([]models.PatientTransfer, error) {
	all, _ := s.GetAll(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *fakeTransferStore) GetByID(ctx context.Context, id string) (*models.PatientTransfer, error) {
	return s.transfers[id], nil
}

func (s *fakeTransferStore) Create(ctx context.Context, transfer *models.PatientTransfer) error {
	transfer.ID = "generated-id"
	s.created = transfer
	s.transfers[transfer.ID] = transfer
	return nil
}

func (s *fakeTransferStore) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.PatientTransfer, error) {
	transfer, ok := s.transfers[id]
	if !ok {
		return nil, nil
	}
	s.updates = updates
	if status, ok := updates["status"].(string); ok {
		transfer.Status = status
	}
	if approver, ok := updates["approved_by_id"].(string); ok {
		transfer.ApprovedByID = &approver
	}
	return transfer, nil
}

func (s *fakeTransferStore) Complete(ctx context.Context, id string) (*models.PatientTransfer, error) {
	transfer, ok := s.transfers[id]
	if !ok {
		return nil, nil
	}
	s.completed = append(s.completed, id)
	now := time.Now()
	transfer.Status = models.TransferStatusCompleted
	transfer.CompletedAt = &now
	return transfer, nil
}

type fakePatientStore struct {
	patients map[string]*models.Patient
}

func (s *fakePatientStore) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.patients[id], nil
}

type fakeWardStore struct {
	wards map[string]*models.Ward
}

func (s *fakeWardStore) GetByID(ctx context.Context, id string) (*models.Ward, error) {
	return s.wards[id], nil
}

type recordedBroadcast struct {
	scope  string
	target string
	event  realtime.Event
}

type recordingHub struct {
	broadcasts []recordedBroadcast
}

func (h *recordingHub) BroadcastToAll(event realtime.Event) {
	h.broadcasts = append(h.broadcasts, recordedBroadcast{scope: "all", event: event})
}

func (h *recordingHub) BroadcastToWard(wardID string, event realtime.Event) {
	h.broadcasts = append(h.broadcasts, recordedBroadcast{scope: "ward", target: wardID, event: event})
}

func (h *recordingHub) BroadcastToUser(userID string, event realtime.Event) {
	h.broadcasts = append(h.broadcasts, recordedBroadcast{scope: "user", target: userID, event: event})
}

func strPtr(s string) *string { return &s }

func testFixture(transfers ...*models.PatientTransfer) (*TransferService, *fakeTransferStore, *recordingHub) {
	store := newFakeTransferStore(transfers...)
	patients := &fakePatientStore{patients: map[string]*models.Patient{
		"p1": {ID: "p1", PatientID: "PUL-001", Name: "A Patient", CurrentWardID: strPtr("ward-general"), Status: "active"},
		"p2": {ID: "p2", PatientID: "PUL-002", Name: "Unassigned", Status: "active"},
	}}
	wards := &fakeWardStore{wards: map[string]*models.Ward{
		"ward-icu":     {ID: "ward-icu", Name: "ICU", Type: models.WardTypeICU, TotalBeds: 12, OccupiedBeds: 4},
		"ward-general": {ID: "ward-general", Name: "General Ward", Type: models.WardTypeNonICU, TotalBeds: 40, OccupiedBeds: 20},
		"ward-full":    {ID: "ward-full", Name: "TB Wing", Type: models.WardTypeTBWing, TotalBeds: 20, OccupiedBeds: 20},
	}}
	hub := &recordingHub{}
	return NewTransferService(store, patients, wards, hub), store, hub
}

func TestRequestStampsOriginWardAndBroadcastsToDestination(t *testing.T) {
	service, store, hub := testFixture()

	transfer := &models.PatientTransfer{
		PatientID:     "p1",
		ToWardID:      "ward-icu",
		Reason:        "Respiratory failure",
		RequestedByID: "dr-1",
		// A forged origin and status must be overwritten.
		FromWardID: strPtr("ward-forged"),
		Status:     models.TransferStatusApproved,
	}
	require.NoError(t, service.Request(context.Background(), transfer))

	require.NotNil(t, store.created)
	require.NotNil(t, store.created.FromWardID)
	assert.Equal(t, "ward-general", *store.created.FromWardID)
	assert.Equal(t, models.TransferStatusPending, store.created.Status)
	assert.Nil(t, store.created.ApprovedByID)

	require.Len(t, hub.broadcasts, 1)
	assert.Equal(t, "ward", hub.broadcasts[0].scope)
	assert.Equal(t, "ward-icu", hub.broadcasts[0].target)
	assert.Equal(t, "transfer_request", hub.broadcasts[0].event.Type)
}

func TestRequestForUnassignedPatientHasNoOriginWard(t *testing.T) {
	service, store, _ := testFixture()

	transfer := &models.PatientTransfer{PatientID: "p2", ToWardID: "ward-icu", RequestedByID: "dr-1"}
	require.NoError(t, service.Request(context.Background(), transfer))
	assert.Nil(t, store.created.FromWardID)
}

func TestRequestRejectsSameWardDestination(t *testing.T) {
	service, store, hub := testFixture()

	transfer := &models.PatientTransfer{PatientID: "p1", ToWardID: "ward-general", RequestedByID: "dr-1"}
	err := service.Request(context.Background(), transfer)
	assert.ErrorIs(t, err, ErrSameWard)
	assert.Nil(t, store.created)
	assert.Empty(t, hub.broadcasts)
}

func TestRequestRejectsFullWard(t *testing.T) {
	service, _, _ := testFixture()

	transfer := &models.PatientTransfer{PatientID: "p1", ToWardID: "ward-full", RequestedByID: "dr-1"}
	assert.ErrorIs(t, service.Request(context.Background(), transfer), ErrWardFull)
}

func TestRequestRejectsUnknownPatientAndWard(t *testing.T) {
	service, _, _ := testFixture()

	err := service.Request(context.Background(), &models.PatientTransfer{PatientID: "missing", ToWardID: "ward-icu"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = service.Request(context.Background(), &models.PatientTransfer{PatientID: "p1", ToWardID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequestRejectsInvalidPayload(t *testing.T) {
	service, store, _ := testFixture()

	err := service.Request(context.Background(), &models.PatientTransfer{PatientID: "p1"})
	assert.Error(t, err)
	assert.Nil(t, store.created)
}

func TestApprovalStampsApproverAndBroadcastsGlobally(t *testing.T) {
	pending := &models.PatientTransfer{ID: "t1", PatientID: "p1", ToWardID: "ward-icu", Status: models.TransferStatusPending}
	service, store, hub := testFixture(pending)

	updated, err := service.UpdateStatus(context.Background(), "t1", models.TransferStatusApproved, "hod-1")
	require.NoError(t, err)
	assert.Equal(t, models.TransferStatusApproved, updated.Status)
	assert.Equal(t, "hod-1", store.updates["approved_by_id"])

	require.Len(t, hub.broadcasts, 1)
	assert.Equal(t, "all", hub.broadcasts[0].scope)
	assert.Equal(t, "transfer_update", hub.broadcasts[0].event.Type)
}

func TestCompletionRequiresApproval(t *testing.T) {
	pending := &models.PatientTransfer{ID: "t1", Status: models.TransferStatusPending}
	service, store, hub := testFixture(pending)

	_, err := service.UpdateStatus(context.Background(), "t1", models.TransferStatusCompleted, "hod-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, store.completed)
	assert.Empty(t, hub.broadcasts)
}

func TestApprovedTransferCompletesThroughTransactionalPath(t *testing.T) {
	approved := &models.PatientTransfer{ID: "t1", Status: models.TransferStatusApproved}
	service, store, hub := testFixture(approved)

	updated, err := service.UpdateStatus(context.Background(), "t1", models.TransferStatusCompleted, "hod-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, store.completed)
	assert.Equal(t, models.TransferStatusCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)

	require.Len(t, hub.broadcasts, 1)
	assert.Equal(t, "all", hub.broadcasts[0].scope)
}

func TestTerminalStatesRejectFurtherTransitions(t *testing.T) {
	completed := &models.PatientTransfer{ID: "t1", Status: models.TransferStatusCompleted}
	cancelled := &models.PatientTransfer{ID: "t2", Status: models.TransferStatusCancelled}
	service, _, _ := testFixture(completed, cancelled)

	for _, id := range []string{"t1", "t2"} {
		for _, next := range []string{
			models.TransferStatusPending,
			models.TransferStatusApproved,
			models.TransferStatusCompleted,
			models.TransferStatusCancelled,
		} {
			_, err := service.UpdateStatus(context.Background(), id, next, "hod-1")
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
}

func TestCancellationIsAllowedFromPendingAndApproved(t *testing.T) {
	pending := &models.PatientTransfer{ID: "t1", Status: models.TransferStatusPending}
	approved := &models.PatientTransfer{ID: "t2", Status: models.TransferStatusApproved}
	service, _, _ := testFixture(pending, approved)

	for _, id := range []string{"t1", "t2"} {
		updated, err := service.UpdateStatus(context.Background(), id, models.TransferStatusCancelled, "hod-1")
		require.NoError(t, err)
		assert.Equal(t, models.TransferStatusCancelled, updated.Status)
	}
}

func TestUpdateStatusOnMissingTransferIsNotFound(t *testing.T) {
	service, _, _ := testFixture()
	_, err := service.UpdateStatus(context.Background(), "missing", models.TransferStatusApproved, "hod-1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetAllFiltersByStatus(t *testing.T) {
	pending := &models.PatientTransfer{ID: "t1", Status: models.TransferStatusPending}
	approved := &models.PatientTransfer{ID: "t2", Status: models.TransferStatusApproved}
	service, _, _ := testFixture(pending, approved)

	matched, err := service.GetAll(context.Background(), models.TransferStatusPending)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "t1", matched[0].ID)

	all, err := service.GetAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
