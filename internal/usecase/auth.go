package usecase

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid email or password")
	ErrUserInactive         = errs.New("user account is inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidUserInput     = errs.New("invalid user input")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type RegisterParams struct {
	Email    string
	Password string
	Role     string
}

type AuthUseCase interface {
	Register(ctx context.Context, params RegisterParams) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	userRepo    commands.UserRepository
	userQueries queries.UserQueries
	userReader  queries.UserReadStore
	jwtService  *jwt.Service
	db          db.Queryer
}

func NewAuthUseCase(
	userRepo commands.UserRepository,
	userQueries queries.UserQueries,
	userReader queries.UserReadStore,
	jwtService *jwt.Service,
	q db.Queryer,
) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:    userRepo,
		userQueries: userQueries,
		userReader:  userReader,
		jwtService:  jwtService,
		db:          q,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}
	pass, err := user.NewPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}
	role, err := user.NewRole(params.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	hashed, err := password.Hash(pass.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(email, hashed, role)

	id, err := a.userRepo.Create(ctx, a.db, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return a.userQueries.GetCurrentUser(ctx, id)
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error) {
	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, a.db, view.ID); err != nil {
		return "", nil, err
	}

	return token, view, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.userReader.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || view == nil {
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.userQueries.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
