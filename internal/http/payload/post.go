package payload

import (
	"net/http"

	"blogr/internal/core"

	"github.com/jellydator/validation"
)

// PostForm carries the text fields of a multipart post request. The file
// part is handled separately by the gateway.
type PostForm struct {
	ID      string
	Title   string
	Summary string
	Content string
}

// PostFormFromRequest reads the post fields from an already parsed
// multipart form.
func PostFormFromRequest(r *http.Request) PostForm {
	return PostForm{
		ID:      r.FormValue("id"),
		Title:   r.FormValue("title"),
		Summary: r.FormValue("summary"),
		Content: r.FormValue("content"),
	}
}

// ValidateForUpdate requires the post id that update requests carry in
// the form body.
func (p PostForm) ValidateForUpdate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
	)
}

func (p PostForm) ToMessage() core.PostMessage {
	return core.PostMessage{
		Title:   p.Title,
		Summary: p.Summary,
		Content: p.Content,
	}
}
