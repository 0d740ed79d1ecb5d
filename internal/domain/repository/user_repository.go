package repository

import (
	"context"

	"github.com/jhoicas/materiales-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario. Devuelve domain.ErrUsernameAlreadyExists
	// si el username ya está tomado (constraint único).
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
