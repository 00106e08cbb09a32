package main

import "errors"

var (
	// ErrNotFound is returned for slugs that do not name a known post
	ErrNotFound = errors.New("post not found")

	// ErrMalformedDocument is returned when a post's front matter can not be parsed
	ErrMalformedDocument = errors.New("malformed document")
)
