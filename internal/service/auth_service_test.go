package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"prorent/internal/config"
	"prorent/internal/domain"
	"prorent/internal/service"
	"prorent/mocks"
)

var jwtCfg = config.JWTConfig{
	Secret:             "test-secret",
	AccessTokenExpiry:  15 * time.Minute,
	RefreshTokenExpiry: time.Hour,
	Issuer:             "prorent-test",
}

func TestAuthService_Signup_CustomerDefaultsRole(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewAuthService(mockRepo, mockEmail, jwtCfg)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	mockEmail.On("SendWelcomeEmail", mock.Anything, "jane@example.com", "Jane").Return(nil)

	user, err := svc.Signup(context.Background(), service.SignupInput{
		Email:    "jane@example.com",
		Password: "Str0ng@Pass",
		Name:     "Jane",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEqual(t, "Str0ng@Pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ng@Pass")))
	mockRepo.AssertExpectations(t)
	mockEmail.AssertExpectations(t)
}

func TestAuthService_Signup_RejectsWeakPasswords(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), jwtCfg)

	weak := []string{
		"Sh0rt@1",     // too short
		"alllower1@a", // no uppercase
		"ALLUPPER1@A", // no lowercase
		"NoDigits@@a", // no digit
		"NoSpecial1a", // no special character
	}
	for _, pw := range weak {
		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email: "x@example.com", Password: pw, Name: "X",
		})
		assert.ErrorIs(t, err, domain.ErrWeakPassword, "password %q should be rejected", pw)
	}
}

func TestAuthService_Signup_VendorRequiresCompanyAndGSTIN(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), jwtCfg)

	_, err := svc.Signup(context.Background(), service.SignupInput{
		Email: "v@example.com", Password: "Str0ng@Pass", Name: "V", Role: "VENDOR",
	})
	assert.ErrorIs(t, err, domain.ErrVendorFieldsMissing)

	_, err = svc.Signup(context.Background(), service.SignupInput{
		Email: "v@example.com", Password: "Str0ng@Pass", Name: "V", Role: "VENDOR",
		CompanyName: "V Rentals", GSTIN: "not-a-gstin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
}

func TestAuthService_Signup_VendorWithValidGSTIN(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewAuthService(mockRepo, mockEmail, jwtCfg)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	mockEmail.On("SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Signup(context.Background(), service.SignupInput{
		Email: "v@example.com", Password: "Str0ng@Pass", Name: "V", Role: "VENDOR",
		CompanyName: "V Rentals", GSTIN: "07AAACK1234F1Z5",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleVendor, user.Role)
	assert.Equal(t, "07AAACK1234F1Z5", *user.GSTIN)
}

func TestAuthService_Signup_CannotSelfAssignAdmin(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), jwtCfg)

	_, err := svc.Signup(context.Background(), service.SignupInput{
		Email: "a@example.com", Password: "Str0ng@Pass", Name: "A", Role: "ADMIN",
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthService_Signup_WelcomeEmailFailureIsNotFatal(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewAuthService(mockRepo, mockEmail, jwtCfg)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	mockEmail.On("SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	user, err := svc.Signup(context.Background(), service.SignupInput{
		Email: "jane@example.com", Password: "Str0ng@Pass", Name: "Jane",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestValidGSTIN(t *testing.T) {
	assert.True(t, service.ValidGSTIN("07AAACK1234F1Z5"))
	assert.True(t, service.ValidGSTIN("29AABCM5678G1Z3"))

	assert.False(t, service.ValidGSTIN(""))
	assert.False(t, service.ValidGSTIN("07AAACK1234F1Z"))    // 14 chars
	assert.False(t, service.ValidGSTIN("07aaack1234f1z5"))   // lowercase
	assert.False(t, service.ValidGSTIN("07AAACK1234F1X5"))   // missing Z marker
	assert.False(t, service.ValidGSTIN("07AAACK1234F0Z5"))   // entity digit 0
	assert.False(t, service.ValidGSTIN("07AAACK1234F1Z5XX")) // too long
}

func TestAuthService_Login_IssuesWorkingTokenPair(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, new(mocks.MockEmailSender), jwtCfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ng@Pass"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := &domain.User{ID: 42, Email: "jane@example.com", PasswordHash: string(hash), Role: domain.RoleVendor}
	mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email: "jane@example.com", Password: "Str0ng@Pass",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.RoleVendor, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, new(mocks.MockEmailSender), jwtCfg)

	hash, _ := bcrypt.GenerateFromPassword([]byte("Str0ng@Pass"), bcrypt.MinCost)
	user := &domain.User{ID: 42, Email: "jane@example.com", PasswordHash: string(hash)}
	mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email: "jane@example.com", Password: "wrong",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, new(mocks.MockEmailSender), jwtCfg)

	mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email: "ghost@example.com", Password: "Str0ng@Pass",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_RefreshTokenCannotBeUsedAsAccessToken(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, new(mocks.MockEmailSender), jwtCfg)

	hash, _ := bcrypt.GenerateFromPassword([]byte("Str0ng@Pass"), bcrypt.MinCost)
	user := &domain.User{ID: 7, Email: "jane@example.com", PasswordHash: string(hash)}
	mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email: "jane@example.com", Password: "Str0ng@Pass",
	})
	assert.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestAuthService_RefreshToken_IssuesFreshPair(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, new(mocks.MockEmailSender), jwtCfg)

	hash, _ := bcrypt.GenerateFromPassword([]byte("Str0ng@Pass"), bcrypt.MinCost)
	user := &domain.User{ID: 7, Email: "jane@example.com", PasswordHash: string(hash)}
	mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)
	mockRepo.On("GetByID", mock.Anything, int64(7)).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email: "jane@example.com", Password: "Str0ng@Pass",
	})
	assert.NoError(t, err)

	fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	claims, err := svc.ValidateToken(fresh.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}
