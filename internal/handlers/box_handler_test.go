package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Klutterbox/internal/dto"
	"Klutterbox/internal/models"
	"Klutterbox/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBoxService struct {
	mock.Mock
}

func (m *MockBoxService) GetBoxes() ([]models.Box, error) {
	args := m.Called()
	return args.Get(0).([]models.Box), args.Error(1)
}

func (m *MockBoxService) GetSummaries() ([]dto.BoxSummaryDTO, error) {
	args := m.Called()
	return args.Get(0).([]dto.BoxSummaryDTO), args.Error(1)
}

func (m *MockBoxService) GetBoxByCode(code string) (*models.Box, error) {
	args := m.Called(code)
	box, ok := args.Get(0).(*models.Box)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockBoxService) CreateBox(code string, label *string) (*models.Box, error) {
	args := m.Called(code, label)
	box, ok := args.Get(0).(*models.Box)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockBoxService) UpdateBox(code string, patch dto.BoxUpdateDTO) (*models.Box, error) {
	args := m.Called(code, patch)
	box, ok := args.Get(0).(*models.Box)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockBoxService) DeleteBox(code string) error {
	args := m.Called(code)
	return args.Error(0)
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestBoxHandler_ListBoxes(t *testing.T) {
	app := fiber.New()
	mockService := new(MockBoxService)
	handler := NewBoxHandler(mockService)

	app.Get("/api/boxes", handler.ListBoxes)

	boxes := []models.Box{{Code: "box1"}, {Code: "attic1"}}
	mockService.On("GetBoxes").Return(boxes, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/boxes", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestBoxHandler_CreateBox(t *testing.T) {
	app := fiber.New()
	mockService := new(MockBoxService)
	handler := NewBoxHandler(mockService)

	app.Post("/api/boxes", handler.CreateBox)

	label := "Attic"
	box := &models.Box{Code: "attic1", Label: &label}
	mockService.On("CreateBox", "attic1", &label).Return(box, nil)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/boxes", fiber.Map{"code": "attic1", "label": "Attic"}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestBoxHandler_CreateBox_MissingCode(t *testing.T) {
	app := fiber.New()
	mockService := new(MockBoxService)
	handler := NewBoxHandler(mockService)

	app.Post("/api/boxes", handler.CreateBox)

	mockService.On("CreateBox", "", (*string)(nil)).Return(nil, services.ErrBoxCodeRequired)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/boxes", fiber.Map{}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBoxHandler_CreateBox_Conflict(t *testing.T) {
	app := fiber.New()
	mockService := new(MockBoxService)
	handler := NewBoxHandler(mockService)

	app.Post("/api/boxes", handler.CreateBox)

	mockService.On("CreateBox", "attic1", (*string)(nil)).Return(nil, services.ErrBoxExists)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/boxes", fiber.Map{"code": "attic1"}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBoxHandler_GetSummary(t *testing.T) {
	app := fiber.New()
	mockService := new(MockBoxService)
	handler := NewBoxHandler(mockService)

	app.Get("/api/boxes/summary", handler.GetSummary)

	summaries := []dto.BoxSummaryDTO{{Code: "box1", ItemCount: 3}}
	mockService.On("GetSummaries").Return(summaries, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/boxes/summary", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded []dto.BoxSummaryDTO
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, int64(3), decoded[0].ItemCount)
	mockService.AssertExpectations(t)
}

func TestBoxHandler_UpdateBox_NotFound(t *testing.T) {
	app := fiber.New()
	mockService := new(MockBoxService)
	handler := NewBoxHandler(mockService)

	app.Put("/api/boxes/:code", handler.UpdateBox)

	mockService.On("UpdateBox", "missing", mock.AnythingOfType("dto.BoxUpdateDTO")).Return(nil, services.ErrBoxNotFound)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/boxes/missing", fiber.Map{"label": "x"}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBoxHandler_UpdateBox_Rename(t *testing.T) {
	app := fiber.New()
	mockService := new(MockBoxService)
	handler := NewBoxHandler(mockService)

	app.Put("/api/boxes/:code", handler.UpdateBox)

	renamed := &models.Box{Code: "attic2"}
	mockService.On("UpdateBox", "attic1", mock.AnythingOfType("dto.BoxUpdateDTO")).Return(renamed, nil)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/boxes/attic1", fiber.Map{"code": "attic2"}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded models.Box
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "attic2", decoded.Code)
}

func TestBoxHandler_DeleteBox_NotEmpty(t *testing.T) {
	app := fiber.New()
	mockService := new(MockBoxService)
	handler := NewBoxHandler(mockService)

	app.Delete("/api/boxes/:code", handler.DeleteBox)

	mockService.On("DeleteBox", "attic1").Return(services.ErrBoxNotEmpty)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/boxes/attic1", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var decoded map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "Box not empty", decoded["error"])
}

func TestBoxHandler_DeleteBox(t *testing.T) {
	app := fiber.New()
	mockService := new(MockBoxService)
	handler := NewBoxHandler(mockService)

	app.Delete("/api/boxes/:code", handler.DeleteBox)

	mockService.On("DeleteBox", "attic1").Return(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/boxes/attic1", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}
