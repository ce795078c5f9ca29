package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/tutortrack/internal/tracker"
)

// saveWarning is shown when a change was applied but not written to storage.
const saveWarning = "changes may not be saved"

// toConnectError maps tracker errors to Connect status codes.
func toConnectError(err error) error {
	var (
		ve *tracker.ValidationError
		nf *tracker.NotFoundError
		ce *tracker.ConflictError
	)
	switch {
	case errors.As(err, &ve):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.As(err, &nf):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.As(err, &ce):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// splitMutationError separates a save warning, which still counts as success,
// from a real failure.
func splitMutationError(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if tracker.IsSaveWarning(err) {
		return saveWarning, nil
	}
	return "", toConnectError(err)
}
