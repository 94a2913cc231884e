package rest

import (
	"github.com/go-playground/validator/v10"
)

type LoginPayload struct {
	// Identifier accepts either the registered email or the username.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type SignupPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignupResponse struct {
	IdentityID string `json:"identity_id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	// Confirmed stays false until the email confirmation link is used.
	Confirmed bool `json:"confirmed"`
}

type FavoritePayload struct {
	Article ArticlePayload `json:"article" validate:"required"`
}

type HistoryPayload struct {
	Article ArticlePayload `json:"article" validate:"required"`
}

// ArticlePayload carries the article snapshot the client is acting on.
// The server stores it verbatim; search results are not re-fetched.
type ArticlePayload struct {
	ID              string   `json:"id" validate:"required"`
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	Authors         []string `json:"authors"`
	Published       string   `json:"published"`
	PublishedParsed string   `json:"publishedParsed,omitempty"`
	Link            string   `json:"link"`
	PDFLink         string   `json:"pdfLink,omitempty"`
	Categories      []string `json:"categories"`
}

type CommentPayload struct {
	ArticleID string `json:"article_id" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

type ToggleFavoriteResponse struct {
	ArticleID string `json:"article_id"`
	Favorited bool   `json:"favorited"`
}

// CustomValidator wraps go-playground validator for echo
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
