package repository

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("record not found")
	ErrAmbiguousResult = errors.New("more than one record matched")
	ErrAlreadyExists   = errors.New("record already exists")
	ErrStorage         = errors.New("storage failure")
)
