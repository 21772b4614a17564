package customer_test

import (
	"context"
	"database/sql"
	"testing"

	"shopping-cart-api/internal/customer"
	"shopping-cart-api/internal/shared/database"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeCustomerRepo struct {
	byUsername map[string]customer.Customer
	nextID     int64
	createErr  error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byUsername: map[string]customer.Customer{}}
}

func (f *fakeCustomerRepo) WithTx(tx database.DBTX) customer.Repository { return f }

func (f *fakeCustomerRepo) Create(ctx context.Context, arg customer.CreateCustomerParams) (customer.Customer, error) {
	if f.createErr != nil {
		return customer.Customer{}, f.createErr
	}
	if _, exists := f.byUsername[arg.Username]; exists {
		return customer.Customer{}, &pq.Error{Code: "23505", Constraint: "customers_username_key"}
	}
	f.nextID++
	c := customer.Customer{
		ID:          f.nextID,
		Username:    arg.Username,
		Password:    arg.Password,
		PhoneNumber: arg.PhoneNumber,
		Address:     arg.Address,
	}
	f.byUsername[arg.Username] = c
	return c, nil
}

func (f *fakeCustomerRepo) GetByUsername(ctx context.Context, username string) (customer.Customer, error) {
	c, ok := f.byUsername[username]
	if !ok {
		return customer.Customer{}, sql.ErrNoRows
	}
	return c, nil
}

func (f *fakeCustomerRepo) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	c, ok := f.byUsername[username]
	if !ok {
		return 0, sql.ErrNoRows
	}
	return c.ID, nil
}

func TestCustomerService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("stores_a_bcrypt_hash_not_the_password", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		svc := customer.NewService(repo, nil)

		res, err := svc.Signup(ctx, customer.SignupRequest{
			Username:    "alice",
			Password:    "password1234",
			PhoneNumber: "01022728572",
			Address:     "221B Baker Street",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", res.Username)
		assert.NotZero(t, res.ID)

		stored := repo.byUsername["alice"]
		assert.NotEqual(t, "password1234", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password1234")))
	})

	t.Run("duplicate_username", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		svc := customer.NewService(repo, nil)

		_, err := svc.Signup(ctx, customer.SignupRequest{Username: "alice", Password: "password1234"})
		require.NoError(t, err)

		_, err = svc.Signup(ctx, customer.SignupRequest{Username: "alice", Password: "otherpassword"})
		assert.ErrorIs(t, err, customer.ErrUsernameTaken)
	})

	t.Run("short_password_fails_validation", func(t *testing.T) {
		svc := customer.NewService(newFakeCustomerRepo(), nil)

		_, err := svc.Signup(ctx, customer.SignupRequest{Username: "alice", Password: "short"})
		assert.Error(t, err)
	})
}

func TestCustomerService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	signup := func(t *testing.T) (customer.Service, *fakeCustomerRepo) {
		t.Helper()
		repo := newFakeCustomerRepo()
		svc := customer.NewService(repo, nil)
		_, err := svc.Signup(ctx, customer.SignupRequest{Username: "alice", Password: "password1234"})
		require.NoError(t, err)
		return svc, repo
	}

	t.Run("returns_a_signed_token_with_the_username_claim", func(t *testing.T) {
		svc, _ := signup(t)

		res, err := svc.Login(ctx, customer.LoginRequest{Username: "alice", Password: "password1234"})
		require.NoError(t, err)
		require.NotEmpty(t, res.AccessToken)

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(res.AccessToken, claims, func(t *jwt.Token) (any, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", claims["username"])
	})

	t.Run("wrong_password", func(t *testing.T) {
		svc, _ := signup(t)

		_, err := svc.Login(ctx, customer.LoginRequest{Username: "alice", Password: "wrongpassword"})
		assert.ErrorIs(t, err, customer.ErrInvalidCredentials)
	})

	t.Run("unknown_username", func(t *testing.T) {
		svc, _ := signup(t)

		_, err := svc.Login(ctx, customer.LoginRequest{Username: "mallory", Password: "password1234"})
		assert.ErrorIs(t, err, customer.ErrInvalidCredentials)
	})
}

func TestCustomerService_Me(t *testing.T) {
	ctx := context.Background()

	repo := newFakeCustomerRepo()
	svc := customer.NewService(repo, nil)
	_, err := svc.Signup(ctx, customer.SignupRequest{
		Username: "alice", Password: "password1234", PhoneNumber: "01022728572", Address: "221B Baker Street",
	})
	require.NoError(t, err)

	res, err := svc.Me(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "221B Baker Street", res.Address)

	_, err = svc.Me(ctx, "mallory")
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}
