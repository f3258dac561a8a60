package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"blogr/internal/core"
	"blogr/internal/http/handler/middleware"
	"blogr/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Register   = "POST /register"
	Login      = "POST /login"
	Profile    = "GET /profile"
	Logout     = "POST /logout"
	CreatePost = "POST /post"
	ListPosts  = "GET /post"
	GetPost    = "GET /post/{id}"
	UpdatePost = "PUT /post"
	DeletePost = "DELETE /delete/{id}"
)

const tokenCookie = "token"

type BlogHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             AuthService
	posts            PostService
}

func NewBlogHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, auth AuthService, posts PostService) *BlogHandler {
	return &BlogHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             auth,
		posts:            posts,
	}
}

func (h *BlogHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	user, err := h.auth.Register(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Registration failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrDuplicateUser) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not log in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusBadRequest
			resp.Error = "wrong credentials"
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.sessionToken(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	identity, err := h.auth.VerifySession(token)
	if err != nil {
		h.unauthorized(w, requestId)
		h.logs.Errorw("session verification failed",
			"error", err,
			"handler", Profile,
			"request_id", requestId)
		return
	}

	h.respond(w, identity, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	// stateless tokens cannot be revoked; logout only clears the cookie
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	h.respond(w, Response{Message: "logged out"}, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.sessionToken(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create post",
			Error:   "no file uploaded",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing cover file",
			"error", err,
			"handler", CreatePost,
			"request_id", requestId)
		return
	}
	defer file.Close()

	form := payload.PostFormFromRequest(r)
	cover := core.CoverUpload{
		File:     file,
		Filename: header.Filename,
	}

	post, err := h.posts.Create(r.Context(), token, form.ToMessage(), cover)
	if err != nil {
		h.respondPostError(w, err, "Could not create post", CreatePost, requestId)
		return
	}

	h.respond(w, post, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	posts, err := h.posts.List(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not list posts",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list posts",
			"error", err,
			"handler", ListPosts,
			"request_id", requestId)
		return
	}

	h.respond(w, posts, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id := r.PathValue("id")

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		h.respondPostError(w, err, "Could not get post", GetPost, requestId)
		return
	}

	h.respond(w, post, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.sessionToken(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	var cover *core.CoverUpload
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		cover = &core.CoverUpload{
			File:     file,
			Filename: header.Filename,
		}
	case errors.Is(err, http.ErrMissingFile):
		// cover is optional on update; the stored one is retained
	default:
		h.respond(w, Response{
			Message: "Could not update post",
			Error:   fmt.Errorf("read form file: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to read cover file",
			"error", err,
			"handler", UpdatePost,
			"request_id", requestId)
		return
	}

	form := payload.PostFormFromRequest(r)
	if err := form.ValidateForUpdate(); err != nil {
		h.respond(w, Response{
			Message: "Could not update post",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", UpdatePost,
			"request_id", requestId)
		return
	}

	post, err := h.posts.Update(r.Context(), token, form.ID, form.ToMessage(), cover)
	if err != nil {
		h.respondPostError(w, err, "Could not update post", UpdatePost, requestId)
		return
	}

	h.respond(w, post, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.sessionToken(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	id := r.PathValue("id")

	if err := h.posts.Delete(r.Context(), token, id); err != nil {
		h.respondPostError(w, err, "Could not delete post", DeletePost, requestId)
		return
	}

	h.respond(w, Response{Message: "post deleted"}, http.StatusOK, requestId)
}

// respondPostError maps post service errors to one consistent status
// convention: 401 bad token, 403 not author, 404 unknown post, 500 rest.
func (h *BlogHandler) respondPostError(w http.ResponseWriter, err error, message string, handlerName string, requestId string) {
	resp := Response{
		Message: message,
	}
	httpCode := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrInvalidToken):
		httpCode = http.StatusUnauthorized
		resp.Error = "unauthorized"
	case errors.Is(err, core.ErrNotAuthor):
		httpCode = http.StatusForbidden
		resp.Error = err.Error()
	case errors.Is(err, core.ErrPostNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("post operation failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *BlogHandler) unauthorized(w http.ResponseWriter, requestId string) {
	h.respond(w, Response{
		Message: "Unauthorized",
		Error:   "unauthorized",
	}, http.StatusUnauthorized, requestId)
}

func (h *BlogHandler) sessionToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(tokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (h *BlogHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}
