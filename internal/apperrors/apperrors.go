package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	ErrInvalidRequest = errors.New("invalid request body")
	ErrValidation     = errors.New("validation failed")

	ErrNotAuthenticated = errors.New("no authenticated user")
	ErrForbidden        = errors.New("operation not permitted")

	ErrNotReviewer     = errors.New("only users with the reviewer role can submit reviews")
	ErrNotAdmin        = errors.New("only administrators can perform this action")
	ErrSelfMessage     = errors.New("cannot send a message to yourself")
	ErrEmailTaken      = errors.New("a user with this email already exists")
	ErrSummarizerUnset = errors.New("summarizer is not configured")
)

type UserNotFoundError struct{ UserID string }

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user '%s' not found", e.UserID)
}
func (e *UserNotFoundError) Is(target error) bool { return target == ErrNotFound }

type ArticleNotFoundError struct{ ArticleID string }

func (e *ArticleNotFoundError) Error() string {
	return fmt.Sprintf("article '%s' not found", e.ArticleID)
}
func (e *ArticleNotFoundError) Is(target error) bool { return target == ErrNotFound }

type EmailTakenError struct{ Email string }

func (e *EmailTakenError) Error() string {
	return fmt.Sprintf("user with email '%s' already exists", e.Email)
}
func (e *EmailTakenError) Is(target error) bool {
	return target == ErrAlreadyExists || target == ErrEmailTaken
}
