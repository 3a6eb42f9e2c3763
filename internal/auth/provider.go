package auth

import (
	"context"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

type Provider interface {
	ValidateTokenLocal(token string) (*internal.Employee, error)
	ValidateTokenRemote(ctx context.Context, token string) (*internal.Employee, error)
}
