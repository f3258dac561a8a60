package core

import (
	"context"
	"errors"
	"fmt"

	"blogr/internal/repository"
	tokenIssuer "blogr/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUser error = errors.New("username already taken")
var ErrInvalidToken error = errors.New("invalid session token")

// Auth registers users, verifies their credentials and issues session
// tokens. Tokens are stateless: verification is a signature check only,
// there is no server-side session record and nothing to revoke on logout.
type Auth struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  TokenIssuer
	bcryptCost int
}

func NewAuth(logger *zap.SugaredLogger, repo Repository, jwt TokenIssuer, bcryptCost int) *Auth {
	return &Auth{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		bcryptCost: bcryptCost,
	}
}

func (a *Auth) Register(ctx context.Context, msg AuthMessage) (UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), a.bcryptCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     msg.Username,
		PasswordHash: string(hash),
	}

	if err := a.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return UserRecord{}, ErrDuplicateUser
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	a.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

func (a *Auth) Login(ctx context.Context, msg AuthMessage) (string, UserRecord, error) {
	user, err := a.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", UserRecord{}, ErrUserNotFound
		}
		return "", UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", UserRecord{}, ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName: user.Username,
		Subject:  user.ID,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", UserRecord{}, fmt.Errorf("signing token: %w", err)
	}

	a.logs.Infow("user logged in", "userId", user.ID, "username", user.Username)

	return signed, UserRecord{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// VerifySession recovers the identity embedded in a signed session token.
func (a *Auth) VerifySession(token string) (Identity, error) {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}

	username, _ := claims["username"].(string)

	return Identity{
		ID:       sub,
		Username: username,
	}, nil
}
