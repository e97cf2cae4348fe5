package services

import (
	"errors"
	"time"

	"order_tracker/internal/models"
	"order_tracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Principal kinds embedded in every token. An endpoint checks the kind,
// not just the signature, so admin and customer tokens are never
// interchangeable.
const (
	KindAdmin    = "admin"
	KindCustomer = "customer"
)

type TokenClaims struct {
	PrincipalID uint   `json:"pid"`
	Identifier  string `json:"identifier"`
	Kind        string `json:"kind"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(username, password string) (string, *models.User, error)
	CustomerLogin(identifier, password string) (string, *models.Customer, error)
	VerifyToken(token, expectedKind string) (*TokenClaims, error)
	Setup() (*models.User, error)
}

type authService struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	secret       []byte
	adminTTL     time.Duration
	customerTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, customerRepo repository.CustomerRepository, secret string, adminTTL, customerTTL time.Duration) AuthService {
	return &authService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		secret:       []byte(secret),
		adminTTL:     adminTTL,
		customerTTL:  customerTTL,
	}
}

func (s *authService) Login(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID, user.Username, KindAdmin, s.adminTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// CustomerLogin resolves one user-supplied identifier against two
// spaces: account number first, then phone number. The login form has a
// single field and does not ask which kind the customer typed.
func (s *authService) CustomerLogin(identifier, password string) (string, *models.Customer, error) {
	customer, err := s.customerRepo.GetByAccountNumber(identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer, err = s.customerRepo.GetByPhoneNumber(identifier)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(customer.ID, customer.AccountNumber, KindCustomer, s.customerTTL)
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

func (s *authService) VerifyToken(tokenString, expectedKind string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	if claims.Kind != expectedKind {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// Setup bootstraps the first admin account with the default
// credentials. It refuses to run once any admin exists.
func (s *authService) Setup() (*models.User, error) {
	_, err := s.userRepo.GetByUsername("admin")
	if err == nil {
		return nil, ErrAdminExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: "admin", Password: string(hashed)}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	log.Info().Str("username", user.Username).Msg("admin user bootstrapped")
	return user, nil
}

func (s *authService) issueToken(id uint, identifier, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		PrincipalID: id,
		Identifier:  identifier,
		Kind:        kind,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
