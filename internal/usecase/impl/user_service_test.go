package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/infra/auth"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *fakeUserRepo, *fakeTokenIssuer) {
	t.Helper()

	repo := newFakeUserRepo()
	issuer := &fakeTokenIssuer{tokens: []string{"token-one", "token-two"}}
	svc := NewUserService(UserServiceParams{
		TxManager: newFakeTxManager(repo),
		UserRepo:  repo,
		Hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Tokens:    issuer,
		Logger:    newDiscardLogger(),
	})

	return svc, repo, issuer
}

func registerTestUser(t *testing.T, svc usecase.UserUsecase, phone, password string) *entity.User {
	t.Helper()

	user, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Name:        "Jamie",
		Email:       "jamie@example.com",
		PhoneNumber: phone,
		Password:    password,
	})
	require.NoError(t, err)

	return user
}

func TestUserService_Register_Success(t *testing.T) {
	svc, repo, _ := newUserServiceForTest(t)

	user := registerTestUser(t, svc, "+981234567", "secret123")

	assert.NotZero(t, user.ID)
	assert.Equal(t, entity.RoleCustomer, user.Role)

	stored := repo.stored(user.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	assert.Empty(t, stored.APIToken)
}

func TestUserService_Register_DuplicatePhone(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	registerTestUser(t, svc, "+981234567", "secret123")

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Name:        "Casey",
		Email:       "casey@example.com",
		PhoneNumber: "+981234567",
		Password:    "other456",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_UnknownPhone(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	result, err := svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber: "+000000000",
		Password:    "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLogin)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, repo, _ := newUserServiceForTest(t)

	user := registerTestUser(t, svc, "+981234567", "secret123")

	result, err := svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber:      "+981234567",
		Password:         "wrong",
		GenerateNewToken: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// A mismatch still yields a result; it just carries success=false.
	assert.False(t, result.Success)
	assert.Equal(t, "+981234567", result.Username)
	assert.Equal(t, user.ID, result.UserID)
	assert.Empty(t, result.APIKey)

	// A failed attempt never rotates the stored token.
	assert.Empty(t, repo.stored(user.ID).APIToken)
}

func TestUserService_Login_RotatesTokenWhenRequested(t *testing.T) {
	svc, repo, _ := newUserServiceForTest(t)

	user := registerTestUser(t, svc, "+981234567", "secret123")

	result, err := svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber:      "+981234567",
		Password:         "secret123",
		GenerateNewToken: true,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "token-one", result.APIKey)
	assert.Equal(t, "token-one", repo.stored(user.ID).APIToken)

	// A second rotation overwrites the first.
	result, err = svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber:      "+981234567",
		Password:         "secret123",
		GenerateNewToken: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "token-two", result.APIKey)
	assert.Equal(t, "token-two", repo.stored(user.ID).APIToken)
}

func TestUserService_Login_NoRotationWithoutRequest(t *testing.T) {
	svc, repo, issuer := newUserServiceForTest(t)

	user := registerTestUser(t, svc, "+981234567", "secret123")

	result, err := svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber: "+981234567",
		Password:    "secret123",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.APIKey)
	assert.Empty(t, repo.stored(user.ID).APIToken)
	assert.Zero(t, issuer.calls)
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	svc, repo, _ := newUserServiceForTest(t)

	user := registerTestUser(t, svc, "+981234567", "secret123")
	before := repo.stored(user.ID).PasswordHash

	_, err := svc.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
		PhoneNumber:     "+981234567",
		CurrentPassword: "wrong",
		NewPassword:     "newpass456",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	assert.Equal(t, before, repo.stored(user.ID).PasswordHash)
}

func TestUserService_ChangePassword_FlipsLoginOutcome(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	registerTestUser(t, svc, "+981234567", "secret123")

	_, err := svc.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
		PhoneNumber:     "+981234567",
		CurrentPassword: "secret123",
		NewPassword:     "newpass456",
	})
	require.NoError(t, err)

	oldResult, err := svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber: "+981234567",
		Password:    "secret123",
	})
	require.NoError(t, err)
	assert.False(t, oldResult.Success)

	newResult, err := svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber: "+981234567",
		Password:    "newpass456",
	})
	require.NoError(t, err)
	assert.True(t, newResult.Success)
}

func TestUserService_Authenticate(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	user := registerTestUser(t, svc, "+981234567", "secret123")

	login, err := svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber:      "+981234567",
		Password:         "secret123",
		GenerateNewToken: true,
	})
	require.NoError(t, err)

	actor, err := svc.Authenticate(context.Background(), login.APIKey)
	require.NoError(t, err)
	assert.Equal(t, user.ID, actor.ID)

	_, err = svc.Authenticate(context.Background(), "bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	// Accounts without a rotated token store an empty string; an empty
	// bearer token must never match them.
	_, err = svc.Authenticate(context.Background(), "")
	require.Error(t, err)
}

func TestUserService_UpdateUserByPhone_Partial(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	registerTestUser(t, svc, "+981234567", "secret123")

	newName := "Robin"
	updated, err := svc.UpdateUserByPhone(context.Background(), "+981234567", &usecase.UpdateUserInput{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Robin", updated.Name)
	// The omitted email keeps its stored value.
	assert.Equal(t, "jamie@example.com", updated.Email)

	_, err = svc.UpdateUserByPhone(context.Background(), "+999999999", &usecase.UpdateUserInput{Name: &newName})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
