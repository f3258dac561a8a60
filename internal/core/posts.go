package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogr/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrPostNotFound error = errors.New("post not found")
var ErrNotAuthor error = errors.New("you are not the author")

// recentPostsLimit caps the public listing.
const recentPostsLimit = 20

// Posts implements post CRUD. Every mutation requires a verified session
// and the author check: a post can only be changed or deleted by the user
// whose id is stored on its author field.
type Posts struct {
	logs     *zap.SugaredLogger
	repo     Repository
	sessions SessionVerifier
	files    FileStore
}

func NewPosts(logger *zap.SugaredLogger, repo Repository, sessions SessionVerifier, files FileStore) *Posts {
	return &Posts{
		logs:     logger,
		repo:     repo,
		sessions: sessions,
		files:    files,
	}
}

func (p *Posts) Create(ctx context.Context, token string, msg PostMessage, cover CoverUpload) (PostRecord, error) {
	identity, err := p.sessions.VerifySession(token)
	if err != nil {
		return PostRecord{}, err
	}

	coverPath, err := p.files.Save(cover.File, cover.Filename)
	if err != nil {
		return PostRecord{}, fmt.Errorf("save cover file: %w", err)
	}

	post := repository.Post{
		ID:        uuid.NewString(),
		Title:     msg.Title,
		Summary:   msg.Summary,
		Content:   msg.Content,
		Cover:     coverPath,
		AuthorID:  identity.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := p.repo.CreatePost(ctx, post); err != nil {
		return PostRecord{}, fmt.Errorf("create post: %w", err)
	}

	p.logs.Infow("post created", "postId", post.ID, "authorId", identity.ID)

	return postToRecord(post, identity.Username), nil
}

func (p *Posts) List(ctx context.Context) ([]PostRecord, error) {
	posts, err := p.repo.ListRecentPosts(ctx, recentPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}

	usernames, err := p.resolveAuthors(ctx, posts)
	if err != nil {
		return nil, err
	}

	records := make([]PostRecord, len(posts))
	for i, post := range posts {
		records[i] = postToRecord(post, usernames[post.AuthorID])
	}

	return records, nil
}

func (p *Posts) Get(ctx context.Context, id string) (PostRecord, error) {
	post, err := p.repo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return PostRecord{}, ErrPostNotFound
		}
		return PostRecord{}, fmt.Errorf("get post by id: %w", err)
	}

	usernames, err := p.resolveAuthors(ctx, []repository.Post{post})
	if err != nil {
		return PostRecord{}, err
	}

	return postToRecord(post, usernames[post.AuthorID]), nil
}

func (p *Posts) Update(ctx context.Context, token string, id string, msg PostMessage, cover *CoverUpload) (PostRecord, error) {
	identity, err := p.sessions.VerifySession(token)
	if err != nil {
		return PostRecord{}, err
	}

	post, err := p.repo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return PostRecord{}, ErrPostNotFound
		}
		return PostRecord{}, fmt.Errorf("get post by id: %w", err)
	}

	if post.AuthorID != identity.ID {
		return PostRecord{}, ErrNotAuthor
	}

	post.Title = msg.Title
	post.Summary = msg.Summary
	post.Content = msg.Content

	// cover is replaced only when a new file came with the request
	if cover != nil {
		coverPath, err := p.files.Save(cover.File, cover.Filename)
		if err != nil {
			return PostRecord{}, fmt.Errorf("save cover file: %w", err)
		}
		post.Cover = coverPath
	}

	if err := p.repo.UpdatePost(ctx, post); err != nil {
		return PostRecord{}, fmt.Errorf("update post: %w", err)
	}

	p.logs.Infow("post updated", "postId", post.ID, "authorId", identity.ID)

	return postToRecord(post, identity.Username), nil
}

func (p *Posts) Delete(ctx context.Context, token string, id string) error {
	identity, err := p.sessions.VerifySession(token)
	if err != nil {
		return err
	}

	post, err := p.repo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("get post by id: %w", err)
	}

	if post.AuthorID != identity.ID {
		return ErrNotAuthor
	}

	if err := p.repo.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	p.logs.Infow("post deleted", "postId", id, "authorId", identity.ID)

	return nil
}

func (p *Posts) resolveAuthors(ctx context.Context, posts []repository.Post) (map[string]string, error) {
	ids := make([]string, 0, len(posts))
	seen := make(map[string]struct{}, len(posts))
	for _, post := range posts {
		if _, ok := seen[post.AuthorID]; ok {
			continue
		}
		seen[post.AuthorID] = struct{}{}
		ids = append(ids, post.AuthorID)
	}

	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	users, err := p.repo.GetUsersByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve post authors: %w", err)
	}

	usernames := make(map[string]string, len(users))
	for _, user := range users {
		usernames[user.ID] = user.Username
	}

	return usernames, nil
}

func postToRecord(post repository.Post, authorUsername string) PostRecord {
	return PostRecord{
		ID:        post.ID,
		Title:     post.Title,
		Summary:   post.Summary,
		Content:   post.Content,
		Cover:     post.Cover,
		Author:    UserRecord{ID: post.AuthorID, Username: authorUsername},
		CreatedAt: post.CreatedAt,
	}
}
