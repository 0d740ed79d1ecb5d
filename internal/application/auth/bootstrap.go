package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// BootstrapConfig credenciales del admin inicial.
type BootstrapConfig struct {
	Username string
	Password string
}

// Bootstrapper crea el usuario admin inicial si no existe. Paso idempotente
// de arranque, externo al contrato de régimen del registro: se ejecuta una
// vez en main, comprueba existencia y crea solo si falta.
type Bootstrapper struct {
	userRepo repository.UserRepository
	cfg      BootstrapConfig
}

// NewBootstrapper construye el paso de bootstrap.
func NewBootstrapper(userRepo repository.UserRepository, cfg BootstrapConfig) *Bootstrapper {
	return &Bootstrapper{userRepo: userRepo, cfg: cfg}
}

// EnsureAdmin garantiza que exista el usuario admin configurado.
// Devuelve true si lo creó en esta llamada.
func (b *Bootstrapper) EnsureAdmin(ctx context.Context) (bool, error) {
	existing, err := b.userRepo.GetByUsername(ctx, b.cfg.Username)
	if err != nil {
		return false, fmt.Errorf("buscar admin inicial: %w", err)
	}
	if existing != nil {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(b.cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hashear password inicial: %w", err)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     b.cfg.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := b.userRepo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("crear admin inicial: %w", err)
	}
	return true, nil
}
