// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) inside this directory.
//
// Implementations return sql.ErrNoRows when a looked-up row is missing and the
// sentinels below for constraint outcomes; callers match them with errors.Is.
package repository

import "errors"

var (
	// ErrDuplicate signals a unique constraint hit, e.g. a second vote by the same user.
	ErrDuplicate = errors.New("duplicate record")
	// ErrConflict signals the write collides with existing state, e.g. an overlapping booking.
	ErrConflict = errors.New("conflicting record")
	// ErrNoCapacity signals a bounded counter is already at its limit.
	ErrNoCapacity = errors.New("no capacity left")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
