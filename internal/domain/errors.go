package domain

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrDuplicateMovie   = errors.New("a movie with this title and release year already exists")
	ErrSeatAlreadyTaken = errors.New("seat already taken")
)
