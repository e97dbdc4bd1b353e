package post

import "errors"

var (
	ErrNotFound         = errors.New("post not found")
	ErrSlugTaken        = errors.New("a post with this slug already exists")
	ErrInvalidTitle     = errors.New("title is required")
	ErrInvalidContent   = errors.New("content is required")
	ErrCategoryNotFound = errors.New("category not found")
)
