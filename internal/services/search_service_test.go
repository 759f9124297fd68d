package services

import (
	"testing"

	"Klutterbox/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(item *models.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) CreateBatch(items []*models.Item) error {
	args := m.Called(items)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(id uint) (*models.Item, error) {
	args := m.Called(id)
	item, ok := args.Get(0).(*models.Item)
	if !ok {
		return nil, args.Error(1)
	}
	return item, args.Error(1)
}

func (m *MockItemRepository) Update(item *models.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(item *models.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) List(boxCode string, limit, offset int) ([]models.Item, error) {
	args := m.Called(boxCode, limit, offset)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) SearchMatch(matchExpr, boxCode string, limit int) ([]models.Item, error) {
	args := m.Called(matchExpr, boxCode, limit)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) SearchLike(tokens []string, boxCode string, limit int) ([]models.Item, error) {
	args := m.Called(tokens, boxCode, limit)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) ReferencedImagePaths() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func testLogService() LogService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return LogService{Log: log}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hex", "wrench"}, Tokenize("hex wrench"))
	assert.Equal(t, []string{"6piece", "set"}, Tokenize(" 6-piece   set! "))
	assert.Empty(t, Tokenize("--- !!!"))
	assert.Empty(t, Tokenize(""))
}

func TestSearchService_EmptyQueryAndBox(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := NewSearchService(mockRepo, testLogService())

	items, err := service.Search("", "")

	assert.NoError(t, err)
	assert.Empty(t, items)
	mockRepo.AssertNotCalled(t, "SearchMatch")
	mockRepo.AssertNotCalled(t, "List")
}

func TestSearchService_ORTierWins(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := NewSearchService(mockRepo, testLogService())

	rows := []models.Item{{Name: "Hex Wrench Set"}}
	mockRepo.On("SearchMatch", `"hex"* OR "wrench"*`, "", 200).Return(rows, nil)

	items, err := service.Search("hex wrench", "")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "SearchLike")
}

func TestSearchService_FallsBackToANDThenLike(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := NewSearchService(mockRepo, testLogService())

	empty := []models.Item{}
	rows := []models.Item{{Name: "Model AA-123X"}}
	mockRepo.On("SearchMatch", `"23x"* OR "model"*`, "", 200).Return(empty, nil).Once()
	mockRepo.On("SearchMatch", `"23x"* "model"*`, "", 200).Return(empty, nil).Once()
	mockRepo.On("SearchLike", []string{"23x", "model"}, "", 200).Return(rows, nil).Once()

	items, err := service.Search("23x model", "")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	mockRepo.AssertExpectations(t)
}

func TestSearchService_BoxBrowse(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := NewSearchService(mockRepo, testLogService())

	rows := []models.Item{{Name: "Lamp", BoxCode: "attic1"}}
	mockRepo.On("List", "attic1", 200, 0).Return(rows, nil)

	items, err := service.Search("", "attic1")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "SearchMatch")
}

func TestSearchService_CacheAndInvalidation(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := NewSearchService(mockRepo, testLogService())

	rows := []models.Item{{Name: "Hammer"}}
	mockRepo.On("SearchMatch", `"hammer"*`, "", 200).Return(rows, nil).Once()

	_, err := service.Search("hammer", "")
	assert.NoError(t, err)

	// Second lookup is served from the cache.
	items, err := service.Search("hammer", "")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	mockRepo.AssertExpectations(t)

	// After invalidation the repository is queried again.
	service.InvalidateCache()
	mockRepo.On("SearchMatch", `"hammer"*`, "", 200).Return(rows, nil).Once()
	_, err = service.Search("hammer", "")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSearchService_BoxFilterPassedThrough(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := NewSearchService(mockRepo, testLogService())

	rows := []models.Item{{Name: "Hammer", BoxCode: "garage"}}
	mockRepo.On("SearchMatch", `"hammer"*`, "garage", 200).Return(rows, nil)

	items, err := service.Search("hammer", "garage")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	mockRepo.AssertExpectations(t)
}
