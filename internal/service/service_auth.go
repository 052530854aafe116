package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asta/blog-keeper/internal/config"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/store"
	"github.com/asta/blog-keeper/internal/utils"
	"github.com/asta/blog-keeper/internal/validators"
	"github.com/asta/blog-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes kept by the UserRepository
// and issues HS256 JWT tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks login payloads before any lookup.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a user account with a bcrypt hash of password.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if userName or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. name already
//     taken, see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, userName, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userName == "" || password == "" {
		log.Error().Str("user_name", userName).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("user_name", userName).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{UserName: userName, PasswordHash: passwordHash})
	if err != nil {
		log.Err(err).Str("user_name", userName).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate checks the supplied credentials.
//
// Returns the stored user or:
//   - ErrBadCredentials if the payload fails validation (e.g. an empty name
//     or password), the user does not exist or the password does not match.
//     These cases are indistinguishable to the caller.
//   - A wrapped error for any other failure.
func (a *authService) Authenticate(ctx context.Context, dto models.LoginDTO) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, dto); err != nil {
		log.Warn().Err(err).Str("user_name", dto.UserName).Msg("invalid login data provided")
		return models.User{}, ErrBadCredentials
	}

	foundUser, err := a.userRepository.FindUserByName(ctx, dto.UserName)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("user_name", dto.UserName).Msg("login attempt for unknown user")
		return models.User{}, ErrBadCredentials
	}
	if err != nil {
		log.Err(err).Str("user_name", dto.UserName).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	err = utils.ComparePassword(foundUser.PasswordHash, dto.UserPassword)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Warn().Int64("id", foundUser.UserID).Str("user_name", foundUser.UserName).Msg("wrong password")
		return models.User{}, ErrBadCredentials
	}
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.UserName, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
