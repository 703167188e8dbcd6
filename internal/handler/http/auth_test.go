package http

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-study-sync/internal/app"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(d testDeps)
		wantStatus int
		wantBody   string
		wantToken  string
	}{
		{
			name: "success",
			body: `{"login":"alice","password":"secret"}`,
			setup: func(d testDeps) {
				d.auth.EXPECT().RegisterUser(gomock.Any(), models.User{Login: "alice", Password: "secret"}).
					Return(models.User{UserID: 3, Login: "alice"}, nil)
				d.auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: 3, Login: "alice"}).
					Return(models.Token{SignedString: "jwt-3"}, nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "Bearer jwt-3",
		},
		{
			name:       "invalid json",
			body:       `{"login":`,
			setup:      func(testDeps) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name: "empty password",
			body: `{"login":"alice"}`,
			setup: func(d testDeps) {
				d.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name: "login taken",
			body: `{"login":"alice","password":"secret"}`,
			setup: func(d testDeps) {
				d.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgLoginAlreadyExists,
		},
		{
			name: "token creation fails",
			body: `{"login":"alice","password":"secret"}`,
			setup: func(d testDeps) {
				d.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 3}, nil)
				d.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   app.MsgRegistrationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestRouter(t, 0)
			tt.setup(deps)

			rr := doRequest(deps.router, http.MethodPost, "/api/auth/register", "", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantToken, rr.Header().Get("Authorization"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
			}
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
		wantBody   string
	}{
		{"success", nil, http.StatusOK, ""},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		// неизвестный логин неотличим от неверного пароля
		{"unknown user", store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"storage down", service.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestRouter(t, 0)

			if tt.loginErr != nil {
				deps.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.loginErr)
			} else {
				deps.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 3}, nil)
				deps.auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: 3}).Return(models.Token{SignedString: "jwt"}, nil)
			}

			rr := doRequest(deps.router, http.MethodPost, "/api/auth/login", "", `{"login":"alice","password":"secret"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
			} else {
				assert.Equal(t, "Bearer jwt", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestRefresh(t *testing.T) {
	deps := newTestRouter(t, 0)
	deps.auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: testUserID}).Return(models.Token{SignedString: "fresh"}, nil)

	rr := doRequest(deps.router, http.MethodPost, "/api/auth/refresh", "good", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer fresh", rr.Header().Get("Authorization"))
}

func TestRefresh_ExpiredToken(t *testing.T) {
	deps := newTestRouter(t, 0)
	deps.auth.EXPECT().ParseToken(gomock.Any(), "stale").Return(models.Token{}, service.ErrTokenIsExpired)

	rr := doRequest(deps.router, http.MethodPost, "/api/auth/refresh", "stale", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgTokenIsExpired, strings.TrimSpace(rr.Body.String()))
}
