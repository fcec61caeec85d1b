// internal/controller/principal_controller_test.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"

	"principal-lookup/internal/model"
	"principal-lookup/internal/service"
	"principal-lookup/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields ...zap.Field) {}
func (nopLogger) Info(msg string, fields ...zap.Field)  {}
func (nopLogger) Warn(msg string, fields ...zap.Field)  {}
func (nopLogger) Error(msg string, fields ...zap.Field) {}
func (nopLogger) Fatal(msg string, fields ...zap.Field) {}
func (l nopLogger) With(fields ...zap.Field) logger.Logger {
	return l
}
func (nopLogger) Sync() error               { return nil }
func (nopLogger) GetZapLogger() *zap.Logger { return zap.NewNop() }

type stubLookupService struct {
	principal model.Principal
	err       error
}

func (s *stubLookupService) LookupByUsername(username string) (model.Principal, error) {
	return s.principal, s.err
}

func (s *stubLookupService) LookupByEmail(email string) (model.Principal, error) {
	return s.principal, s.err
}

var registerTestValidator = sync.OnceFunc(func() {
	nameRe := regexp.MustCompile(`^[a-zA-Z0-9._@-]{1,255}$`)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("principalname", func(fl validator.FieldLevel) bool {
			return nameRe.MatchString(fl.Field().String())
		})
	}
})

func setupRouter(svc service.LookupService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	registerTestValidator()

	r := gin.New()
	c := NewPrincipalController(svc, nopLogger{})
	r.GET("/principals/username/:username", c.GetByUsername)
	r.GET("/principals/email/:email", c.GetByEmail)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetByUsername(t *testing.T) {
	svc := &stubLookupService{
		principal: &model.User{
			Username:    "alice",
			Password:    "secret-hash",
			Email:       "alice@example.com",
			Enabled:     true,
			Authorities: []model.GrantedAuthority{"ROLE_ADMIN", "ROLE_USER"},
		},
	}
	r := setupRouter(svc)

	w := doGet(t, r, "/principals/username/alice")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Code int        `json:"code"`
		Data model.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "alice", body.Data.Username)
	assert.True(t, body.Data.Enabled)
	assert.Equal(t, []model.GrantedAuthority{"ROLE_ADMIN", "ROLE_USER"}, body.Data.Authorities)
	// the password never goes over the wire
	assert.Empty(t, body.Data.Password)
	// and the in-process principal still carries it
	assert.Equal(t, "secret-hash", svc.principal.GetPassword())
}

func TestGetByUsernameErrors(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		err            error
		expectedStatus int
	}{
		{
			name:           "unknown user",
			path:           "/principals/username/nobody",
			err:            service.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "ambiguous user",
			path:           "/principals/username/dup",
			err:            service.ErrAmbiguousUser,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "store failure",
			path:           "/principals/username/alice",
			err:            errors.New("store unreachable"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "invalid username",
			path:           "/principals/username/bad%20name",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(&stubLookupService{err: tc.err})
			w := doGet(t, r, tc.path)
			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestGetByEmail(t *testing.T) {
	svc := &stubLookupService{
		principal: &model.User{
			Username:    "alice",
			Email:       "alice@example.com",
			Enabled:     true,
			Authorities: []model.GrantedAuthority{},
		},
	}
	r := setupRouter(svc)

	w := doGet(t, r, "/principals/email/alice@example.com")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data model.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Data.Username)
	assert.NotNil(t, body.Data.Authorities)
	assert.Len(t, body.Data.Authorities, 0)

	// a path segment that is not an email is rejected before the service runs
	w = doGet(t, r, "/principals/email/not-an-email")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
