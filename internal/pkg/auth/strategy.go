package auth

import (
	"errors"
	"time"

	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and validates bearer tokens carrying caller identity.
type Strategy interface {
	IssueToken(identity model.Identity) (string, error)
	ParseToken(token string) (model.Identity, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
