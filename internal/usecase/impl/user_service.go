// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokens    service.TokenIssuer
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Tokens    service.TokenIssuer
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("phoneNumber", input.PhoneNumber))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.Users()

		_, findErr := userRepo.FindByPhone(ctx, input.PhoneNumber)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("phone number already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing registration")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PhoneNumber:  input.PhoneNumber,
			PasswordHash: hashedPassword,
			Role:         entity.RoleCustomer,
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("phoneNumber", input.PhoneNumber), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return registeredUser, nil
}

// Login verifies credentials against the account matching the phone number.
// An unknown phone number is the only hard failure; a password mismatch
// still yields a result so the caller can report the attempted username.
// The API token is rotated only on a successful attempt that asked for it.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.LoginResult, error) {
	srv.log(ctx).Debug("Starting login", slog.String("phoneNumber", input.PhoneNumber))

	user, err := srv.userRepo.FindByPhone(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown phone number", slog.String("phoneNumber", input.PhoneNumber))

			return nil, domainerrors.ErrInvalidLogin
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// Username echoes the submitted identifier, not the account's display name.
	result := &entity.LoginResult{
		Username: input.PhoneNumber,
		UserID:   user.ID,
	}

	// bcrypt is CPU-bound; checked outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Any("userID", user.ID))

		return result, nil
	}

	result.Success = true

	// APIKey is populated only when a rotation was requested; a plain
	// credential check never echoes the stored token back.
	if input.GenerateNewToken {
		token, tokenErr := srv.tokens.Generate()
		if tokenErr != nil {
			return nil, errors.Wrap(tokenErr, "failed to generate api token")
		}

		if err := srv.rotateToken(ctx, user.ID, token); err != nil {
			return nil, err
		}

		result.APIKey = token
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return result, nil
}

// rotateToken persists a fresh API token for the account. The previous token
// is overwritten; concurrent rotations resolve last-writer-wins.
func (srv *userService) rotateToken(ctx context.Context, userID uint, token string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.Users()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to reload account for token rotation")
		}

		user.APIToken = token

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to rotate api token", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute token rotation transaction")
	}

	return nil
}

// ChangePassword re-verifies the current password before storing the new hash.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*entity.User, error) {
	srv.log(ctx).Debug("Starting password change", slog.String("phoneNumber", input.PhoneNumber))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.Users()

		user, findErr := userRepo.FindByPhone(ctx, input.PhoneNumber)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidLogin
			}

			return errors.Wrap(findErr, "failed to load account for password change")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrIncorrectPassword
		}

		hashedPassword, hashErr := srv.hasher.Hash(input.NewPassword)
		if hashErr != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
		}

		user.PasswordHash = hashedPassword

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to persist new password")
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.String("phoneNumber", input.PhoneNumber), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", updatedUser.ID))

	return updatedUser, nil
}

// Authenticate resolves a bearer token to the account holding it.
func (srv *userService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	user, err := srv.userRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to resolve api token")
	}

	return user, nil
}

// ListUsers returns one page of accounts.
func (srv *userService) ListUsers(ctx context.Context, page repository.Pagination) (*repository.Page[entity.User], error) {
	users, err := srv.userRepo.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser retrieves a single account by ID.
func (srv *userService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateUserByPhone applies a partial update to the account with the given
// phone number. Only explicitly provided fields are touched.
func (srv *userService) UpdateUserByPhone(ctx context.Context, phoneNumber string, input *usecase.UpdateUserInput) (*entity.User, error) {
	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.Users()

		user, findErr := userRepo.FindByPhone(ctx, phoneNumber)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(findErr, "failed to load account for update")
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Email != nil {
			user.Email = *input.Email
		}

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to persist account update")
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account update failed", slog.String("phoneNumber", phoneNumber), slog.Any("error", err))

		return nil, err
	}

	return updatedUser, nil
}
