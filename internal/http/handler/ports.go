package handler

import (
	"context"
	"net/http"

	"blogr/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Register(ctx context.Context, msg core.AuthMessage) (core.UserRecord, error)
	Login(ctx context.Context, msg core.AuthMessage) (string, core.UserRecord, error)
	VerifySession(token string) (core.Identity, error)
}

//counterfeiter:generate -o fake -fake-name PostService . PostService
type PostService interface {
	Create(ctx context.Context, token string, msg core.PostMessage, cover core.CoverUpload) (core.PostRecord, error)
	List(ctx context.Context) ([]core.PostRecord, error)
	Get(ctx context.Context, id string) (core.PostRecord, error)
	Update(ctx context.Context, token string, id string, msg core.PostMessage, cover *core.CoverUpload) (core.PostRecord, error)
	Delete(ctx context.Context, token string, id string) error
}
