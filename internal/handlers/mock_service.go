package handlers

import (
	"context"

	"auth_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerErr   error
	loginUsername string
	loginErr      error

	registerCalls  int
	lastRegister   service.RegisterParams
	lastLoginEmail string
	lastLoginPass  string
}

func (m *mockAuth) Register(_ context.Context, p service.RegisterParams) error {
	m.registerCalls++
	m.lastRegister = p
	return m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	m.lastLoginPass = password
	return m.loginUsername, m.loginErr
}

type mockReset struct {
	issueCode string
	issueErr  error
	valid     bool
	verifyErr error

	issueCalls      int
	lastIssueEmail  string
	lastVerifyEmail string
	lastVerifyCode  string
}

func (m *mockReset) Issue(_ context.Context, email string) (string, error) {
	m.issueCalls++
	m.lastIssueEmail = email
	return m.issueCode, m.issueErr
}

func (m *mockReset) Verify(_ context.Context, email, code string) (bool, error) {
	m.lastVerifyEmail = email
	m.lastVerifyCode = code
	return m.valid, m.verifyErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestRouterWith(s, Options{})
}

func newTestRouterWith(s *service.Service, opts Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, opts)
	return h.InitRoutes()
}
