package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-crew-pass/internal/adapter"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/mock"
	"github.com/MKhiriev/go-crew-pass/internal/validators"
	"github.com/MKhiriev/go-crew-pass/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAadhaar = "234567890123"

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockBackendAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	return NewAuthService(mockAdapter, validators.NewInputValidator(), logger.Nop()), mockAdapter
}

func jwtWithExpiry(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

// ── CheckAadhaar ─────────────────────────────────────────────────────────────

func TestAuthService_CheckAadhaar(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().CheckAadhaar(ctx, testAadhaar).Return(true, nil)

	found, err := svc.CheckAadhaar(ctx, testAadhaar)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestAuthService_CheckAadhaar_InvalidNumber(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.CheckAadhaar(context.Background(), "12345")
	assert.ErrorIs(t, err, validators.ErrInvalidAadhaar)
}

func TestAuthService_CheckAadhaar_TransportError(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().CheckAadhaar(gomock.Any(), testAadhaar).Return(false, errors.New("connection refused"))

	_, err := svc.CheckAadhaar(context.Background(), testAadhaar)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Empty(t, Message(err))
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)
	ctx := context.Background()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwtWithExpiry(t, exp)

	mockAdapter.EXPECT().
		VerifyPasscode(ctx, models.VerifyPasscodeRequest{Aadhaar: testAadhaar, Passcode: "1234"}).
		Return(models.VerifyPasscodeResponse{
			Status:    models.StatusOK,
			Token:     token,
			Role:      "Contractor",
			FirstName: "A",
			LastName:  "B",
		}, nil)

	session, err := svc.Login(ctx, testAadhaar, "1234")
	require.NoError(t, err)
	assert.Equal(t, testAadhaar, session.Aadhaar)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, models.RoleContractor, session.Role)
	assert.Equal(t, "A B", session.DisplayName)
	assert.True(t, exp.Equal(session.ExpiresAt))
}

func TestAuthService_Login_OpaqueTokenHasNoExpiry(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().VerifyPasscode(gomock.Any(), gomock.Any()).
		Return(models.VerifyPasscodeResponse{Status: models.StatusOK, Token: "t1", Role: "Worker", FirstName: "A", LastName: "B"}, nil)

	session, err := svc.Login(context.Background(), testAadhaar, "1234")
	require.NoError(t, err)
	assert.Equal(t, "t1", session.Token)
	assert.True(t, session.ExpiresAt.IsZero())
}

func TestAuthService_Login_RejectedInBody(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().VerifyPasscode(gomock.Any(), gomock.Any()).
		Return(models.VerifyPasscodeResponse{Status: "FAILED", Message: "Invalid passcode"}, nil)

	_, err := svc.Login(context.Background(), testAadhaar, "0000")
	assert.ErrorIs(t, err, ErrLoginRejected)
	assert.Equal(t, "Invalid passcode", Message(err))
}

func TestAuthService_Login_ServerErrorCarriesMessage(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().VerifyPasscode(gomock.Any(), gomock.Any()).
		Return(models.VerifyPasscodeResponse{}, adapter.NewServerError(http.StatusInternalServerError, "Try later"))

	_, err := svc.Login(context.Background(), testAadhaar, "1234")
	assert.ErrorIs(t, err, ErrLoginRejected)
	assert.Equal(t, "Try later", Message(err))
}

func TestAuthService_Login_UnknownRole(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().VerifyPasscode(gomock.Any(), gomock.Any()).
		Return(models.VerifyPasscodeResponse{Status: models.StatusOK, Token: "t1", Role: "Supervisor"}, nil)

	_, err := svc.Login(context.Background(), testAadhaar, "1234")
	assert.ErrorIs(t, err, models.ErrUnknownRole)
}

func TestAuthService_Login_InvalidInput(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), "1", "1234")
	assert.ErrorIs(t, err, validators.ErrInvalidAadhaar)

	_, err = svc.Login(context.Background(), testAadhaar, "12")
	assert.ErrorIs(t, err, validators.ErrInvalidPasscode)
}

// ── Register ─────────────────────────────────────────────────────────────────

func validRegistration() models.Registration {
	return models.Registration{
		Aadhaar:   testAadhaar,
		FirstName: "Ravi",
		LastName:  "Kumar",
		Phone:     "9876543210",
		Role:      "Worker",
		Passcode:  "4321",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)
	ctx := context.Background()
	reg := validRegistration()

	mockAdapter.EXPECT().Register(ctx, reg).Return(models.RegisterResponse{Status: models.StatusOK}, nil)

	require.NoError(t, svc.Register(ctx, reg))
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	reg := validRegistration()
	reg.Phone = "98765"
	assert.ErrorIs(t, svc.Register(ctx, reg), validators.ErrInvalidPhone)

	reg = validRegistration()
	reg.Passcode = ""
	assert.ErrorIs(t, svc.Register(ctx, reg), validators.ErrInvalidPasscode)
}

func TestAuthService_Register_Conflict(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.RegisterResponse{}, adapter.NewServerError(http.StatusConflict, "Aadhaar already registered"))

	err := svc.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, ErrAadhaarAlreadyRegistered)
	assert.Equal(t, "Aadhaar already registered", Message(err))
}

func TestAuthService_Register_RejectedInBody(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.RegisterResponse{Status: "FAILED", Message: "Phone already used"}, nil)

	err := svc.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.Equal(t, "Phone already used", Message(err))
}
