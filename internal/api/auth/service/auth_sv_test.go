package authService

import (
	"io"
	"testing"

	"ExpenseTracker/internal/api/auth"
	authRepository "ExpenseTracker/internal/api/auth/repository"
	"ExpenseTracker/internal/entity"
	"ExpenseTracker/pkg/bcrypt"
	"ExpenseTracker/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeUserStore struct {
	byEmail map[string]entity.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]entity.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user entity.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return auth.ErrEmailAlreadyExists
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (entity.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (entity.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

type fakeAuthRepository struct {
	store *fakeUserStore
}

func (f *fakeAuthRepository) NewClient(bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestAuthService(store *fakeUserStore) IAuthService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return New(logger, &fakeAuthRepository{store: store}, bcrypt.NewWithCost(4), utils.New())
}

func TestRegisterUser_DefaultsCurrencyToUSD(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	user, err := svc.RegisterUser(context.Background(), auth.RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "USD", user.Currency)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.RegisterUser(context.Background(), auth.RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	stored := store.byEmail["alice@example.com"]
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.NewWithCost(4).ComparePassword(stored.Password, "secret123"))
}

func TestRegisterUser_LowercasesEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	user, err := svc.RegisterUser(context.Background(), auth.RegisterUserRequest{
		Name:     "Alice",
		Email:    "Alice@Example.COM",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	req := auth.RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}

	_, err := svc.RegisterUser(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.RegisterUser(context.Background(), req)
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestRegisterUser_RejectsUnknownCurrency(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.RegisterUser(context.Background(), auth.RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Currency: "BTC",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCurrency)
}

func TestLogin_ReturnsTokenAndUser(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.RegisterUser(context.Background(), auth.RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Currency: "EUR",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Greater(t, res.ExpiresInMinutes, 0.0)
	assert.Equal(t, "EUR", res.User.Currency)
	assert.Equal(t, "Alice", res.User.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.RegisterUser(context.Background(), auth.RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
}

func TestGetProfile(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	registered, err := svc.RegisterUser(context.Background(), auth.RegisterUserRequest{
		Name:          "Alice",
		Email:         "alice@example.com",
		Password:      "secret123",
		MonthlyBudget: 1200,
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, profile.ID)
	assert.Equal(t, 1200.0, profile.MonthlyBudget)

	_, err = svc.GetProfile(context.Background(), "missing-id")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
