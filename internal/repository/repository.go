package repository

import (
	"context"
	"errors"
	"fmt"

	"blogr/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUser error = errors.New("username already taken")
var ErrPostNotFound error = errors.New("post not found")

type BlogRepository struct {
	db Storage
}

func NewBlogRepository(db Storage) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

func (r *BlogRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Post{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BlogRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.InsertRecord(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *BlogRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *BlogRepository) GetUsersByID(ctx context.Context, ids []string) ([]User, error) {
	users := []User{}
	err := r.db.GetAllBy(ctx, "id", ids, &users)
	if err != nil {
		return nil, fmt.Errorf("get users by id: %w", err)
	}

	return users, nil
}

func (r *BlogRepository) CreatePost(ctx context.Context, post Post) error {
	err := r.db.InsertRecord(ctx, &post)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *BlogRepository) GetPostByID(ctx context.Context, id string) (Post, error) {
	var post Post

	err := r.db.GetOneBy(ctx, "id", id, &post)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, fmt.Errorf("get post by id: %w", err)
	}

	return post, nil
}

func (r *BlogRepository) ListRecentPosts(ctx context.Context, limit int) ([]Post, error) {
	posts := []Post{}
	err := r.db.ListRecent(ctx, "created_at", limit, &posts)
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}

	return posts, nil
}

func (r *BlogRepository) UpdatePost(ctx context.Context, post Post) error {
	err := r.db.UpdateRecord(ctx, &post)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	return nil
}

func (r *BlogRepository) DeletePost(ctx context.Context, id string) error {
	err := r.db.DeleteBy(ctx, "id", id, &Post{})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	return nil
}
