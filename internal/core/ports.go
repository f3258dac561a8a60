package core

import (
	"context"
	"io"

	"blogr/internal/repository"
	tokenIssuer "blogr/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUsersByID(ctx context.Context, ids []string) ([]repository.User, error)
	CreatePost(ctx context.Context, post repository.Post) error
	GetPostByID(ctx context.Context, id string) (repository.Post, error)
	ListRecentPosts(ctx context.Context, limit int) ([]repository.Post, error)
	UpdatePost(ctx context.Context, post repository.Post) error
	DeletePost(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name SessionVerifier . SessionVerifier
type SessionVerifier interface {
	VerifySession(token string) (Identity, error)
}

//counterfeiter:generate -o fake -fake-name FileStore . FileStore
type FileStore interface {
	Save(src io.Reader, originalName string) (string, error)
}
