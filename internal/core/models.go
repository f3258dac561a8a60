package core

import (
	"io"
	"time"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserRecord is the public view of a user. The password hash never
// leaves the repository layer.
type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Identity is the verified subject of a session token.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type PostMessage struct {
	Title   string
	Summary string
	Content string
}

// CoverUpload is an uploaded cover image streamed through as an opaque blob.
type CoverUpload struct {
	File     io.Reader
	Filename string
}

type PostRecord struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Content   string     `json:"content"`
	Cover     string     `json:"cover,omitempty"`
	Author    UserRecord `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
}
