package tree

import (
	"errors"
)

var (
	// ErrEmptyCandidateSet is returned when there is nothing to train on.
	ErrEmptyCandidateSet = errors.New("no compatible article")

	// ErrInvalidTrainingSet is returned for inconsistent rows and labels.
	ErrInvalidTrainingSet = errors.New("invalid training set")
)

// EmptyCandidateSetError reports a training set without rows.
type EmptyCandidateSetError struct{}

func (e *EmptyCandidateSetError) Error() string {
	return ErrEmptyCandidateSet.Error()
}

func (e *EmptyCandidateSetError) Is(target error) bool {
	return target == ErrEmptyCandidateSet
}

// NewEmptyCandidateSetError creates a new EmptyCandidateSetError
func NewEmptyCandidateSetError() *EmptyCandidateSetError {
	return &EmptyCandidateSetError{}
}
