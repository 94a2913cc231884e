package domain

import "errors"

var (
	// 検索関連エラー
	ErrEmptySearchTerm    = errors.New("search term cannot be empty")
	ErrInvalidSearchScope = errors.New("invalid search scope")
	ErrSearchUpstream     = errors.New("search upstream unavailable")
	ErrFeedParse          = errors.New("malformed search feed")

	// 認証・認可エラー
	ErrInvalidCredentials = errors.New("invalid email/username or password")
	ErrEmailNotConfirmed  = errors.New("email address not confirmed")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email address already registered")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidUserContext = errors.New("invalid user context")

	// ライブラリ関連エラー
	ErrEmptyComment    = errors.New("comment content cannot be empty")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("comment belongs to another user")
	ErrProfileNotFound = errors.New("user profile not found")
)
