package user

import "context"

type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (int64, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Find(ctx context.Context, id int64) (User, error)
}
