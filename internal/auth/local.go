package auth

import (
	"context"
	"errors"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/storage"
)

// LocalAuthProvider validates bearer tokens against the in-process session
// store. Used in development, where login issues sessions directly.
type LocalAuthProvider struct {
	dir    *storage.Directory
	logger internal.Logger
}

func NewLocalAuthProvider(dir *storage.Directory, logger internal.Logger) *LocalAuthProvider {
	return &LocalAuthProvider{dir: dir, logger: logger}
}

func (a *LocalAuthProvider) ValidateTokenLocal(token string) (*internal.Employee, error) {
	emp, err := a.dir.SessionEmployee(token)
	if err != nil {
		a.logger.Warnf("invalid session token")
		return nil, errors.New("invalid token")
	}
	return emp, nil
}

func (a *LocalAuthProvider) ValidateTokenRemote(ctx context.Context, token string) (*internal.Employee, error) {
	a.logger.Warnf("ValidateTokenRemote not implemented in LocalAuthProvider")
	return nil, errors.New("not implemented in LocalAuthProvider")
}
