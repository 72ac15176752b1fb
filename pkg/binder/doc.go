// Package binder populates request structs from HTTP requests.
//
//	var req SignInRequest
//	if err := binder.JSON()(r, &req); err != nil { ... }
//
// All errors wrap one of the package sentinels so callers can map them to
// status codes with errors.Is.
package binder
