package users

import (
	"context"

	"github.com/dmitrijs2005/secureconnect/internal/server/models"
)

// Repository is the persistence boundary for user records.
//
// Contract:
//   - Create returns common.ErrorAlreadyExists when the username is taken
//     (the table's unique constraint is authoritative, including races
//     with a prior Exists check).
//   - GetByUsername returns common.ErrorNotFound when no row matches.
//   - Exists is a side-effect-free probe, safe to call repeatedly.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}
