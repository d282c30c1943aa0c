package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/core/services"
	"github.com/lavaresto/menu_backend/internal/dto"
	"github.com/lavaresto/menu_backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	bootstrapUser = "owner"
	bootstrapPass = "s3cret-bootstrap"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAdminRepository
	service  portssvc.AuthSvcFacade
	logs     *bytes.Buffer
	ctx      context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAdminRepository)
	suite.service = newAuthService(suite.mockRepo, bootstrapUser, bootstrapPass, time.Second)
	suite.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(suite.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	suite.ctx = middleware.WithLogger(context.Background(), logger)
}

func newAuthService(repo *MockAdminRepository, user, pass string, timeout time.Duration) portssvc.AuthSvcFacade {
	return services.NewAuthService(repo, timeout, []services.CredentialProvider{
		services.NewBootstrapCredentialProvider(user, pass),
		services.NewStoredCredentialProvider(repo),
	}, services.WithClock(fixedClock))
}

func (suite *AuthServiceTestSuite) TestVerify_BootstrapWithEmptyStore() {
	principal, err := suite.service.Verify(suite.ctx, bootstrapUser, bootstrapPass)

	suite.Require().NoError(err)
	suite.Equal(bootstrapUser, principal.Username)
	suite.Equal(services.SourceBootstrap, principal.Source)
	// The store is never consulted when the bootstrap pair matches.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAdminByCredentials", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestVerify_TrimsSuppliedValues() {
	principal, err := suite.service.Verify(suite.ctx, "  "+bootstrapUser+"\t", " "+bootstrapPass+" ")

	suite.Require().NoError(err)
	suite.Equal(bootstrapUser, principal.Username)
}

func (suite *AuthServiceTestSuite) TestVerify_BootstrapIsCaseSensitive() {
	suite.mockRepo.On("FindAdminByCredentials", mock.Anything, "OWNER", bootstrapPass).Return(nil, apperrors.ErrNotFound).Once()

	principal, err := suite.service.Verify(suite.ctx, "OWNER", bootstrapPass)

	suite.Nil(principal)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestVerify_MissingCredentials() {
	cases := []struct{ username, password string }{
		{"", ""},
		{"a", ""},
		{"", "b"},
		{"   ", "\t"},
	}
	for _, tc := range cases {
		principal, err := suite.service.Verify(suite.ctx, tc.username, tc.password)
		suite.Nil(principal)
		suite.ErrorIs(err, apperrors.ErrMissingCredentials, "username=%q password=%q", tc.username, tc.password)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAdminByCredentials", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestVerify_StoredAdmin() {
	suite.mockRepo.On("FindAdminByCredentials", mock.Anything, "admin", "admin123").
		Return(&domain.Admin{AdminID: "a-1", Username: "admin"}, nil).Once()

	principal, err := suite.service.Verify(suite.ctx, "admin", "admin123")

	suite.Require().NoError(err)
	suite.Equal("admin", principal.Username)
	suite.Equal(services.SourceStore, principal.Source)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestVerify_WrongPassword() {
	suite.mockRepo.On("FindAdminByCredentials", mock.Anything, "admin", "wrong").Return(nil, apperrors.ErrNotFound).Once()

	principal, err := suite.service.Verify(suite.ctx, "admin", "wrong")

	suite.Nil(principal)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.NotErrorIs(err, apperrors.ErrAuthServer)
}

func (suite *AuthServiceTestSuite) TestVerify_StoreFailureIsServerError() {
	suite.mockRepo.On("FindAdminByCredentials", mock.Anything, "admin", "admin123").Return(nil, assert.AnError).Once()

	principal, err := suite.service.Verify(suite.ctx, "admin", "admin123")

	suite.Nil(principal)
	suite.ErrorIs(err, apperrors.ErrAuthServer)
	suite.NotErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestVerify_LookupTimeoutIsServerError() {
	service := newAuthService(suite.mockRepo, bootstrapUser, bootstrapPass, 20*time.Millisecond)
	suite.mockRepo.On("FindAdminByCredentials", mock.Anything, "admin", "admin123").
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, context.DeadlineExceeded).Once()

	start := time.Now()
	principal, err := service.Verify(suite.ctx, "admin", "admin123")

	suite.Nil(principal)
	suite.ErrorIs(err, apperrors.ErrAuthServer)
	suite.Less(time.Since(start), time.Second)
}

// lateProvider ignores its context and answers after the lookup deadline.
type lateProvider struct {
	delay time.Duration
}

func (p lateProvider) Name() string { return "late" }

func (p lateProvider) Check(_ context.Context, _, _ string) (bool, error) {
	time.Sleep(p.delay)
	return true, nil
}

func (suite *AuthServiceTestSuite) TestVerify_MatchAfterDeadlineIsServerError() {
	service := services.NewAuthService(suite.mockRepo, 10*time.Millisecond,
		[]services.CredentialProvider{lateProvider{delay: 50 * time.Millisecond}},
		services.WithClock(fixedClock))

	principal, err := service.Verify(suite.ctx, "admin", "admin123")

	suite.Nil(principal)
	suite.ErrorIs(err, apperrors.ErrAuthServer)
	suite.NotErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAdminByCredentials", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestVerify_BootstrapDisabledWhenHalfConfigured() {
	service := newAuthService(suite.mockRepo, bootstrapUser, "", time.Second)
	suite.mockRepo.On("FindAdminByCredentials", mock.Anything, bootstrapUser, "anything").Return(nil, apperrors.ErrNotFound).Once()

	_, err := service.Verify(suite.ctx, bootstrapUser, "anything")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestVerify_NeverLogsPassword() {
	suite.mockRepo.On("FindAdminByCredentials", mock.Anything, "admin", "hunter2-wrong").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAdminByCredentials", mock.Anything, "admin", "hunter2-broken").Return(nil, assert.AnError).Once()

	_, _ = suite.service.Verify(suite.ctx, bootstrapUser, bootstrapPass)
	_, _ = suite.service.Verify(suite.ctx, "admin", "hunter2-wrong")
	_, _ = suite.service.Verify(suite.ctx, "admin", "hunter2-broken")
	_, _ = suite.service.Verify(suite.ctx, "", "hunter2-missing")

	logged := suite.logs.String()
	suite.Contains(logged, `"username":"admin"`)
	suite.NotContains(logged, bootstrapPass)
	suite.NotContains(logged, "hunter2")
}

func (suite *AuthServiceTestSuite) TestUpdateCredentials_Success() {
	admin := &domain.Admin{AdminID: "a-1", Username: "admin", Password: "admin123"}
	suite.mockRepo.On("FindAdminByUsername", suite.ctx, "admin").Return(admin, nil).Once()
	suite.mockRepo.On("FindAdminByUsername", suite.ctx, "chef").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("UpdateAdmin", suite.ctx, mock.MatchedBy(func(a domain.Admin) bool {
		return a.AdminID == "a-1" && a.Username == "chef" && a.Password == "new-pass" && a.UpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	err := suite.service.UpdateCredentials(suite.ctx, " admin ", dto.UpdateCredentialsRequest{NewUsername: "chef", NewPassword: "new-pass"})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.NotContains(suite.logs.String(), "new-pass")
}

func (suite *AuthServiceTestSuite) TestUpdateCredentials_PasswordOnly() {
	admin := &domain.Admin{AdminID: "a-1", Username: "admin", Password: "admin123"}
	suite.mockRepo.On("FindAdminByUsername", suite.ctx, "admin").Return(admin, nil).Once()
	suite.mockRepo.On("UpdateAdmin", suite.ctx, mock.MatchedBy(func(a domain.Admin) bool {
		return a.Username == "admin" && a.Password == "rotated"
	})).Return(nil).Once()

	err := suite.service.UpdateCredentials(suite.ctx, "admin", dto.UpdateCredentialsRequest{NewPassword: "rotated"})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestUpdateCredentials_NothingToChange() {
	err := suite.service.UpdateCredentials(suite.ctx, "admin", dto.UpdateCredentialsRequest{NewUsername: " "})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAdminByUsername", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestUpdateCredentials_AdminNotStored() {
	suite.mockRepo.On("FindAdminByUsername", suite.ctx, bootstrapUser).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.UpdateCredentials(suite.ctx, bootstrapUser, dto.UpdateCredentialsRequest{NewPassword: "x"})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestUpdateCredentials_UsernameTaken() {
	suite.mockRepo.On("FindAdminByUsername", suite.ctx, "admin").Return(&domain.Admin{AdminID: "a-1", Username: "admin"}, nil).Once()
	suite.mockRepo.On("FindAdminByUsername", suite.ctx, "chef").Return(&domain.Admin{AdminID: "a-2", Username: "chef"}, nil).Once()

	err := suite.service.UpdateCredentials(suite.ctx, "admin", dto.UpdateCredentialsRequest{NewUsername: "chef"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAdmin", mock.Anything, mock.Anything)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
