package repo

import "errors"

// ErrItemNotFound is returned when a lookup misses; update and delete treat a
// missing name as a silent no-op instead.
var ErrItemNotFound = errors.New("item not found")

// ErrDuplicatedItemName signals the unique-name constraint on insert. It is
// the only error path for duplicates; callers decide the user messaging.
var ErrDuplicatedItemName = errors.New("item name already exists")

// ErrUserNotFound is returned when a user is not found in the repository.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicatedUsername signals the unique-username constraint on registration.
var ErrDuplicatedUsername = errors.New("username already exists")
