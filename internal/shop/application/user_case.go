package application

import (
	"context"
	"strings"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/domain"
)

type UserCase struct {
	db     database.Querier
	users  domain.UserRepository
	logger logging.Logger
}

func NewUserCase(db database.Querier, users domain.UserRepository, logger logging.Logger) *UserCase {
	return &UserCase{
		db:     db,
		users:  users,
		logger: logger,
	}
}

func (uc *UserCase) CreateUser(ctx context.Context, params domain.CreateUserParams) (domain.User, error) {
	if err := domain.ValidateFullname(params.Fullname); err != nil {
		return domain.User{}, err
	}
	if err := domain.ValidateUsername(params.Username); err != nil {
		return domain.User{}, err
	}

	username := strings.TrimSpace(params.Username)

	taken, err := uc.users.ExistsByUsername(ctx, uc.db, username)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, domain.NewUserAlreadyExistsError(username)
	}

	user, err := uc.users.Save(ctx, uc.db, domain.User{
		Fullname: strings.TrimSpace(params.Fullname),
		Username: username,
	})
	if err != nil {
		return domain.User{}, err
	}

	uc.logger.Info("user created", "user_id", user.ID, "username", user.Username)

	return user, nil
}

func (uc *UserCase) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return uc.users.FindActive(ctx, uc.db, id)
}

func (uc *UserCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.users.ListActive(ctx, uc.db)
}

func (uc *UserCase) DeleteUser(ctx context.Context, id int64) error {
	_, err := uc.users.Trash(ctx, uc.db, id)
	return err
}
