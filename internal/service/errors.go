package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadySubmitted = errors.New("session already submitted")
	ErrForbidden        = errors.New("not authorized for this session")
	ErrValidation       = errors.New("missing required fields")
)

// mapStoreErr translates driver-level lookup misses into the service error
// taxonomy. Upstream AI failures never pass through here; they are always
// recovered locally.
func mapStoreErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
