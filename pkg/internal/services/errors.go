package services

import "errors"

// Failure kinds surfaced by this layer. Handlers map them onto HTTP
// statuses; nothing here is retried or recovered locally.
var (
	ErrInvalidCredentials = errors.New("invalid authentication credentials")
	ErrInactiveAccount    = errors.New("account was deactivated")
	ErrAccountExists      = errors.New("username or email is already used")
	ErrGroupNotFound      = errors.New("referenced group does not exist")
	ErrNotAuthor          = errors.New("editing other user content is forbidden")

	ErrFollowTargetNotFound = errors.New("user to follow does not exist")
	ErrSelfFollow           = errors.New("unable to follow yourself")
	ErrFollowExists         = errors.New("follow relationship already exists")
)
