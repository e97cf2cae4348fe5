package services

import (
	"testing"
	"time"

	"order_tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestAuthService(t *testing.T, users *mockUserRepo, customers *mockCustomerRepo) AuthService {
	t.Helper()
	return NewAuthService(users, customers, "test-secret", 24*time.Hour, 30*24*time.Hour)
}

func TestAuthService_Login(t *testing.T) {
	users := &mockUserRepo{
		GetByUsernameFunc: func(username string) (*models.User, error) {
			if username != "admin" {
				return nil, gorm.ErrRecordNotFound
			}
			return &models.User{ID: 1, Username: "admin", Password: hashFor(t, "admin123")}, nil
		},
	}
	svc := newTestAuthService(t, users, &mockCustomerRepo{})

	t.Run("success", func(t *testing.T) {
		token, user, err := svc.Login("admin", "admin123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "admin", user.Username)

		claims, err := svc.VerifyToken(token, KindAdmin)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.PrincipalID)
		assert.Equal(t, "admin", claims.Identifier)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, _, err := svc.Login("admin", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, _, err := svc.Login("ghost", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_CustomerLogin_TwoIdentifierSpaces(t *testing.T) {
	customer := &models.Customer{
		ID:            7,
		AccountNumber: "CUST-0007",
		PhoneNumber:   "0922222222",
		Name:          "ليلى",
		Password:      hashFor(t, "secret1"),
	}
	customers := &mockCustomerRepo{
		GetByAccountNumberFunc: func(accountNumber string) (*models.Customer, error) {
			if accountNumber == customer.AccountNumber {
				return customer, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByPhoneNumberFunc: func(phoneNumber string) (*models.Customer, error) {
			if phoneNumber == customer.PhoneNumber {
				return customer, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestAuthService(t, &mockUserRepo{}, customers)

	t.Run("by_account_number", func(t *testing.T) {
		token, got, err := svc.CustomerLogin("CUST-0007", "secret1")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, customer.ID, got.ID)
	})

	t.Run("by_phone_number", func(t *testing.T) {
		_, got, err := svc.CustomerLogin("0922222222", "secret1")
		require.NoError(t, err)
		assert.Equal(t, customer.ID, got.ID)
	})

	t.Run("unknown_identifier", func(t *testing.T) {
		_, _, err := svc.CustomerLogin("CUST-9999", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_VerifyToken_KindEnforced(t *testing.T) {
	customer := &models.Customer{
		ID:            7,
		AccountNumber: "CUST-0007",
		Password:      hashFor(t, "secret1"),
	}
	customers := &mockCustomerRepo{
		GetByAccountNumberFunc: func(string) (*models.Customer, error) { return customer, nil },
	}
	svc := newTestAuthService(t, &mockUserRepo{}, customers)

	token, _, err := svc.CustomerLogin("CUST-0007", "secret1")
	require.NoError(t, err)

	// The signature is valid, the kind is not.
	_, err = svc.VerifyToken(token, KindAdmin)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.VerifyToken(token, KindCustomer)
	assert.NoError(t, err)
}

func TestAuthService_VerifyToken_Invalid(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepo{}, &mockCustomerRepo{})

	_, err := svc.VerifyToken("not-a-token", KindAdmin)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Token signed with a different secret.
	users := &mockUserRepo{
		GetByUsernameFunc: func(string) (*models.User, error) {
			return &models.User{ID: 1, Username: "admin", Password: hashFor(t, "admin123")}, nil
		},
	}
	forged, _, err := NewAuthService(users, &mockCustomerRepo{}, "other-secret", time.Hour, time.Hour).Login("admin", "admin123")
	require.NoError(t, err)

	_, err = svc.VerifyToken(forged, KindAdmin)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	users := &mockUserRepo{
		GetByUsernameFunc: func(string) (*models.User, error) {
			return &models.User{ID: 1, Username: "admin", Password: hashFor(t, "admin123")}, nil
		},
	}
	svc := NewAuthService(users, &mockCustomerRepo{}, "test-secret", -time.Minute, time.Hour)

	token, _, err := svc.Login("admin", "admin123")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token, KindAdmin)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_Setup(t *testing.T) {
	t.Run("creates_admin_once", func(t *testing.T) {
		var created *models.User
		users := &mockUserRepo{
			CreateFunc: func(user *models.User) error {
				created = user
				return nil
			},
		}
		svc := newTestAuthService(t, users, &mockCustomerRepo{})

		user, err := svc.Setup()
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "admin", user.Username)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("admin123")))
	})

	t.Run("refuses_when_admin_exists", func(t *testing.T) {
		users := &mockUserRepo{
			GetByUsernameFunc: func(string) (*models.User, error) {
				return &models.User{ID: 1, Username: "admin"}, nil
			},
		}
		svc := newTestAuthService(t, users, &mockCustomerRepo{})

		_, err := svc.Setup()
		assert.ErrorIs(t, err, ErrAdminExists)
	})
}
