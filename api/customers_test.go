package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/avialane/flightbooking/internal/service/customer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCustomerUseCase is a mock implementation of customer.CustomerUseCase
type MockCustomerUseCase struct {
	mock.Mock
}

func (m *MockCustomerUseCase) List(ctx context.Context, page, size int) (*domain.Page[domain.Customer], error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.Customer]), args.Error(1)
}

func (m *MockCustomerUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerUseCase) Add(ctx context.Context, input customer.CustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerUseCase) Update(ctx context.Context, id uuid.UUID, input customer.CustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerUseCase) Remove(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func TestCustomerHandler_list(t *testing.T) {
	mockService := &MockCustomerUseCase{}
	handler := NewCustomerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/customers?page=1&size=5", nil)

	page := domain.NewPage([]domain.Customer{
		{Base: domain.Base{ID: uuid.New()}, Name: "Jane", Surname: "Doe", Email: "jane@example.com"},
	}, 6, 1, 5)

	mockService.On("List", c.Request.Context(), 1, 5).Return(page, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")
	assert.NotContains(t, w.Body.String(), "password")

	mockService.AssertExpectations(t)
}

func TestCustomerHandler_get(t *testing.T) {
	mockService := &MockCustomerUseCase{}
	handler := NewCustomerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest("GET", "/customers/"+id.String(), nil)

	mockService.On("Get", c.Request.Context(), id).Return(&domain.Customer{
		Base: domain.Base{ID: id}, Name: "Jane", Surname: "Doe", Email: "jane@example.com",
	}, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestCustomerHandler_getUnknown(t *testing.T) {
	mockService := &MockCustomerUseCase{}
	handler := NewCustomerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest("GET", "/customers/"+id.String(), nil)

	mockService.On("Get", c.Request.Context(), id).Return(nil, domain.NewNotFound("Customer", "id", id.String()))

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")

	mockService.AssertExpectations(t)
}

func TestCustomerHandler_getBadID(t *testing.T) {
	mockService := &MockCustomerUseCase{}
	handler := NewCustomerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "42"}}
	c.Request = httptest.NewRequest("GET", "/customers/42", nil)

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Get")
}

func TestCustomerHandler_create(t *testing.T) {
	mockService := &MockCustomerUseCase{}
	handler := NewCustomerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"name":"Jane","surname":"Doe","email":"jane@example.com","password":"secret"}`
	c.Request = httptest.NewRequest("POST", "/customers", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := customer.CustomerInput{Name: "Jane", Surname: "Doe", Email: "jane@example.com", Password: "secret"}
	mockService.On("Add", c.Request.Context(), input).Return(&domain.Customer{
		Base: domain.Base{ID: uuid.New()}, Name: "Jane", Surname: "Doe", Email: "jane@example.com",
	}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	mockService.AssertExpectations(t)
}

func TestCustomerHandler_createMissingFields(t *testing.T) {
	mockService := &MockCustomerUseCase{}
	handler := NewCustomerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/customers", strings.NewReader(`{"name":"Jane"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must not be blank")
	mockService.AssertNotCalled(t, "Add")
}

func TestCustomerHandler_remove(t *testing.T) {
	mockService := &MockCustomerUseCase{}
	handler := NewCustomerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest("DELETE", "/customers/"+id.String(), nil)

	mockService.On("Remove", c.Request.Context(), id).Return(&domain.Customer{
		Base: domain.Base{ID: id}, Name: "Jane",
	}, nil)

	handler.remove(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}
