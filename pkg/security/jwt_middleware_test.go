package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/XenomaCode/MVP-CATERING/pkg/roles"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupProtectedRouter(capability roles.Capability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTMiddleware(), RequireCapability(capability), func(c *gin.Context) {
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return router
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	Configure("test-secret")
	router := setupProtectedRouter(roles.CapRead)

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	Configure("test-secret")
	router := setupProtectedRouter(roles.CapRead)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware_ValidTokenPasses(t *testing.T) {
	Configure("test-secret")
	router := setupProtectedRouter(roles.CapRead)

	token, err := GenerateJWT(1, "collaborator", "colaborador")
	assert.Nil(t, err)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "collaborator")
}

func TestJWTMiddleware_WrongSecretRejected(t *testing.T) {
	Configure("other-secret")
	token, err := GenerateJWT(1, "admin", "admin")
	assert.Nil(t, err)

	Configure("test-secret")
	router := setupProtectedRouter(roles.CapRead)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// An insufficient role answers 401 exactly like a missing credential does.
func TestRequireCapability_InsufficientRole(t *testing.T) {
	Configure("test-secret")
	router := setupProtectedRouter(roles.CapDelete)

	token, err := GenerateJWT(1, "collaborator", "colaborador")
	assert.Nil(t, err)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No autorizado")
}

func TestRequireCapability_UnknownRoleUnauthorized(t *testing.T) {
	Configure("test-secret")
	router := setupProtectedRouter(roles.CapRead)

	token, err := GenerateJWT(1, "superuser", "intruso")
	assert.Nil(t, err)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireCapability_AdminAllowed(t *testing.T) {
	Configure("test-secret")
	router := setupProtectedRouter(roles.CapDelete)

	token, err := GenerateJWT(1, "admin", "admin")
	assert.Nil(t, err)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("userID", "42")

	id, err := CurrentUserID(c)
	assert.Nil(t, err)
	assert.Equal(t, 42, id)
}

func TestCurrentUserID_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := CurrentUserID(c)
	assert.NotNil(t, err)
}
