package services_test

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"foodcourt/internal/models"
	"foodcourt/internal/repositories"
	"foodcourt/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// TestMain suppresses logging during tests for cleaner output
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	user := &models.User{
		Name:     "Test Member",
		Email:    "member@example.com",
		Password: "password123",
		Country:  models.CountryIndia,
	}

	// Successful registration: password hashed, role forced to member.
	mockRepo.On("GetByEmail", user.Email).Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleMember, user.Role)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Email already registered
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: "u1"}, nil).Once()
	err = authService.RegisterUser(user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertExpectations(t)

	// Unsupported country
	badCountry := &models.User{Name: "X", Email: "x@example.com", Password: "password123", Country: "Atlantis"}
	mockRepo.On("GetByEmail", badCountry.Email).Return(nil, repositories.ErrNotFound).Once()
	err = authService.RegisterUser(badCountry)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported country")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "u2",
		Name:     "Manager India",
		Email:    "manager.india@food.com",
		Password: string(hashedPassword),
		Role:     models.RoleManager,
		Country:  models.CountryIndia,
	}

	// Successful login issues a token carrying role and country claims.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, loggedIn, err := authService.LoginUser(user.Email, "manager123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "u2", claims["user_id"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "India", claims["country"])
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err = authService.LoginUser(user.Email, "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Unknown email yields the same generic message.
	mockRepo.On("GetByEmail", "nobody@food.com").Return(nil, repositories.ErrNotFound).Once()
	_, _, err = authService.LoginUser("nobody@food.com", "manager123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u2",
		"role":    "manager",
		"country": "India",
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "u2", claims["user_id"])

	// Garbage token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u2",
		"exp":     jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestIdentityFromClaims(t *testing.T) {
	ident, err := services.IdentityFromClaims(jwt.MapClaims{
		"user_id": "u2",
		"role":    "manager",
		"country": "India",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.Identity{ID: "u2", Role: models.RoleManager, Country: models.CountryIndia}, ident)

	// Missing or unknown claims are rejected.
	_, err = services.IdentityFromClaims(jwt.MapClaims{"role": "manager", "country": "India"})
	assert.Error(t, err)

	_, err = services.IdentityFromClaims(jwt.MapClaims{"user_id": "u2", "role": "superuser", "country": "India"})
	assert.Error(t, err)

	_, err = services.IdentityFromClaims(jwt.MapClaims{"user_id": "u2", "role": "manager", "country": "Atlantis"})
	assert.Error(t, err)
}
