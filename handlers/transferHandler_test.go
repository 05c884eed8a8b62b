package handlers

import (
	"PulmoCare/middlewares"
	"PulmoCare/models"
	"PulmoCare/realtime"
	"PulmoCare/services"
	"PulmoCare/utils"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransferStore struct {
	transfers map[string]*models.PatientTransfer
}

func (s *stubTransferStore) GetAll(ctx context.Context) ([]models.PatientTransfer, error) {
	return nil, nil
}

func (s *stubTransferStore) GetByStatus(ctx context.Context, status string) ([]models.PatientTransfer, error) {
	return nil, nil
}

func (s *stubTransferStore) GetRecent(ctx context.Context, limit int) ([]models.PatientTransfer, error) {
	return nil, nil
}

func (s *stubTransferStore) GetByID(ctx context.Context, id string) (*models.PatientTransfer, error) {
	return s.transfers[id], nil
}

func (s *stubTransferStore) Create(ctx context.Context, transfer *models.PatientTransfer) error {
	transfer.ID = "t-new"
	s.transfers[transfer.ID] = transfer
	return nil
}

func (s *stubTransferStore) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.PatientTransfer, error) {
	transfer, ok := s.transfers[id]
	if !ok {
		return nil, nil
	}
	if status, ok := updates["status"].(string); ok {
		transfer.Status = status
	}
	if approver, ok := updates["approved_by_id"].(string); ok {
		transfer.ApprovedByID = &approver
	}
	return transfer, nil
}

func (s *stubTransferStore) Complete(ctx context.Context, id string) (*models.PatientTransfer, error) {
	transfer, ok := s.transfers[id]
	if !ok {
		return nil, nil
	}
	transfer.Status = models.TransferStatusCompleted
	return transfer, nil
}

type stubPatientStore struct {
	patients map[string]*models.Patient
}

func (s *stubPatientStore) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.patients[id], nil
}

type stubWardStore struct {
	wards map[string]*models.Ward
}

func (s *stubWardStore) GetByID(ctx context.Context, id string) (*models.Ward, error) {
	return s.wards[id], nil
}

func wardID(id string) *string { return &id }

func setupTransferRouter(t *testing.T, store *stubTransferStore) (*gin.Engine, string) {
	t.Helper()
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	gin.SetMode(gin.TestMode)

	patients := &stubPatientStore{patients: map[string]*models.Patient{
		"p1": {ID: "p1", PatientID: "PUL-001", Name: "A Patient", CurrentWardID: wardID("ward-general"), Status: "active"},
	}}
	wards := &stubWardStore{wards: map[string]*models.Ward{
		"ward-icu":     {ID: "ward-icu", TotalBeds: 12, OccupiedBeds: 4},
		"ward-general": {ID: "ward-general", TotalBeds: 40, OccupiedBeds: 20},
	}}
	service := services.NewTransferService(store, patients, wards, realtime.NewHub())
	handler := NewTransferHandler(service)

	router := gin.New()
	api := router.Group("/api", middlewares.TokenAuthMiddleware())
	api.POST("/transfers", handler.RequestTransfer)
	api.GET("/transfers/:transfer_id", handler.GetTransfer)
	api.PUT("/transfers/:transfer_id", handler.UpdateTransferStatus)

	accessToken, _, err := utils.GenerateTokens("dr-1", "consultant")
	require.NoError(t, err)
	return router, accessToken
}

func doJSON(router *gin.Engine, token, method, path string, body interface{}) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		json.NewEncoder(&payload).Encode(body)
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestTransferBindsRequesterFromSession(t *testing.T) {
	store := &stubTransferStore{transfers: map[string]*models.PatientTransfer{}}
	router, token := setupTransferRouter(t, store)

	w := doJSON(router, token, http.MethodPost, "/api/transfers", gin.H{
		"patientId":     "p1",
		"toWardId":      "ward-icu",
		"reason":        "Respiratory failure",
		"requestedById": "someone-else",
	})
	require.Equal(t, 201, w.Code)

	var created models.PatientTransfer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "dr-1", created.RequestedByID)
	assert.Equal(t, models.TransferStatusPending, created.Status)
	require.NotNil(t, created.FromWardID)
	assert.Equal(t, "ward-general", *created.FromWardID)
	assert.Nil(t, created.ApprovedByID)
}

func TestRequestTransferWithoutTokenIsUnauthorized(t *testing.T) {
	store := &stubTransferStore{transfers: map[string]*models.PatientTransfer{}}
	router, _ := setupTransferRouter(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/transfers", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)
}

func TestUpdateTransferStatusConflictsOnBadTransition(t *testing.T) {
	store := &stubTransferStore{transfers: map[string]*models.PatientTransfer{
		"t1": {ID: "t1", Status: models.TransferStatusPending},
	}}
	router, token := setupTransferRouter(t, store)

	w := doJSON(router, token, http.MethodPut, "/api/transfers/t1", gin.H{"status": models.TransferStatusCompleted})
	assert.Equal(t, 409, w.Code)
}

func TestUpdateTransferStatusApprovesAndStampsActor(t *testing.T) {
	store := &stubTransferStore{transfers: map[string]*models.PatientTransfer{
		"t1": {ID: "t1", Status: models.TransferStatusPending},
	}}
	router, token := setupTransferRouter(t, store)

	w := doJSON(router, token, http.MethodPut, "/api/transfers/t1", gin.H{"status": models.TransferStatusApproved})
	require.Equal(t, 200, w.Code)

	var updated models.PatientTransfer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.TransferStatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedByID)
	assert.Equal(t, "dr-1", *updated.ApprovedByID)
}

func TestGetMissingTransferIsNotFound(t *testing.T) {
	store := &stubTransferStore{transfers: map[string]*models.PatientTransfer{}}
	router, token := setupTransferRouter(t, store)

	w := doJSON(router, token, http.MethodGet, "/api/transfers/missing", nil)
	assert.Equal(t, 404, w.Code)
}
