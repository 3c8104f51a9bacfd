package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	custom_error "github.com/XenomaCode/MVP-CATERING/pkg/errors"
	"github.com/XenomaCode/MVP-CATERING/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) PersistUser(req models.CreateUserRequest, hashedPassword []byte) error {
	args := m.Called(req, hashedPassword)
	return args.Error(0)
}

func (m *MockUserRepository) GetUser(id int) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(id int, changes *UserChanges) error {
	args := m.Called(id, changes)
	return args.Error(0)
}

func setupRouter(repo UserRepository, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", "1")
		c.Set("role", role)
		c.Next()
	})

	handler := NewHandler(repo)
	handler.RegisterRoutes(router.Group(""))
	return router
}

func TestRegisterUser_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo, "admin")

	mockRepo.On("PersistUser", mock.MatchedBy(func(req models.CreateUserRequest) bool {
		return req.Username == "nuevo" && req.Role == "collaborator"
	}), mock.MatchedBy(func(hash []byte) bool {
		return bcrypt.CompareHashAndPassword(hash, []byte("secreto1")) == nil
	})).Return(nil)

	body, _ := json.Marshal(gin.H{
		"username": "nuevo",
		"fullname": "Usuario Nuevo",
		"password": "secreto1",
		"role":     "collaborator",
	})
	req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestRegisterUser_InvalidRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo, "admin")

	body, _ := json.Marshal(gin.H{
		"username": "nuevo",
		"fullname": "Usuario Nuevo",
		"password": "secreto1",
		"role":     "superuser",
	})
	req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "PersistUser", mock.Anything, mock.Anything)
}

func TestRegisterUser_CollaboratorUnauthorized(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo, "collaborator")

	body, _ := json.Marshal(gin.H{
		"username": "nuevo",
		"fullname": "Usuario Nuevo",
		"password": "secreto1",
		"role":     "collaborator",
	})
	req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockRepo.AssertNotCalled(t, "PersistUser", mock.Anything, mock.Anything)
}

func TestGetUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo, "admin")

	mockRepo.On("GetUser", 99).Return(nil, custom_error.NewNotFoundError("usuario", 99))

	req, _ := http.NewRequest("GET", "/users/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUser_ShortPasswordRejected(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo, "admin")

	body, _ := json.Marshal(gin.H{"password": "abc"})
	req, _ := http.NewRequest("PATCH", "/users/2", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUpdateUser_SelfCanChangeOwnFullname(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo, "collaborator")

	mockRepo.On("UpdateUser", 1, mock.MatchedBy(func(changes *UserChanges) bool {
		return changes.Fullname != nil && *changes.Fullname == "Nuevo Nombre" && changes.Role == nil
	})).Return(nil)
	mockRepo.On("GetUser", 1).Return(&models.User{ID: 1, Username: "colaborador", Fullname: "Nuevo Nombre", Role: "collaborator"}, nil)

	body, _ := json.Marshal(gin.H{"fullname": "Nuevo Nombre"})
	req, _ := http.NewRequest("PATCH", "/users/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUser_SelfCannotChangeOwnRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo, "collaborator")

	body, _ := json.Marshal(gin.H{"role": "admin"})
	req, _ := http.NewRequest("PATCH", "/users/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUpdateUser_CollaboratorCannotUpdateOthers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo, "collaborator")

	body, _ := json.Marshal(gin.H{"fullname": "Otro Nombre"})
	req, _ := http.NewRequest("PATCH", "/users/2", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUpdateUser_NoChangesReturnsCurrentUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo, "admin")

	mockRepo.On("GetUser", 2).Return(&models.User{ID: 2, Username: "colaborador", Fullname: "Colaborador", Role: "collaborator"}, nil)

	body, _ := json.Marshal(gin.H{})
	req, _ := http.NewRequest("PATCH", "/users/2", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}
