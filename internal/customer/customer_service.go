package customer

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (CustomerResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context, username string) (CustomerResponse, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.L().Named("customer.service")
	}
	return &service{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (CustomerResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CustomerResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return CustomerResponse{}, err
	}

	created, err := s.repo.Create(ctx, CreateCustomerParams{
		Username:    req.Username,
		Password:    string(hashed),
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return CustomerResponse{}, ErrUsernameTaken
		}
		s.logger.Error("signup insert failed", zap.String("username", req.Username), zap.Error(err))
		return CustomerResponse{}, err
	}

	return CustomerResponse{
		ID:          created.ID,
		Username:    created.Username,
		PhoneNumber: created.PhoneNumber,
		Address:     created.Address,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	cust, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return TokenResponse{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cust.Password), []byte(req.Password)); err != nil {
		return TokenResponse{}, ErrInvalidCredentials
	}

	token, err := generateToken(cust.Username, tokenTTL)
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return TokenResponse{}, ErrTokenGenerationFailed
	}

	return TokenResponse{AccessToken: token}, nil
}

func (s *service) Me(ctx context.Context, username string) (CustomerResponse, error) {
	cust, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerResponse{}, ErrCustomerNotFound
		}
		return CustomerResponse{}, err
	}

	return CustomerResponse{
		ID:          cust.ID,
		Username:    cust.Username,
		PhoneNumber: cust.PhoneNumber,
		Address:     cust.Address,
	}, nil
}

func generateToken(username string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
