package grpc

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"repobulletin.shikanime.studio/internal/auth"
	"repobulletin.shikanime.studio/internal/bulletin"
	"repobulletin.shikanime.studio/internal/repobulletin"
)

var errUnauthenticated = errors.New("sign in to edit a bulletin")

// codeOf maps domain errors to Connect codes. Unknown errors are Unavailable
// when they come from an upstream call and Internal otherwise.
func codeOf(err error) connect.Code {
	var cerr *connect.Error
	switch {
	case errors.As(err, &cerr):
		return cerr.Code()
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	case errors.Is(err, bulletin.ErrNotFound),
		errors.Is(err, repobulletin.ErrSessionNotFound),
		errors.Is(err, bulletin.ErrSectionNotFound),
		errors.Is(err, bulletin.ErrRepoRefNotFound):
		return connect.CodeNotFound
	case errors.Is(err, repobulletin.ErrPermissionDenied):
		return connect.CodePermissionDenied
	case errors.Is(err, errUnauthenticated),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrNoToken):
		return connect.CodeUnauthenticated
	case errors.Is(err, bulletin.ErrInvalidBulletin),
		errors.Is(err, bulletin.ErrUnownedRepository),
		errors.Is(err, bulletin.ErrEmptySelection),
		errors.Is(err, bulletin.ErrUnknownRepository):
		return connect.CodeInvalidArgument
	case errors.Is(err, bulletin.ErrConfirmationRequired),
		errors.Is(err, bulletin.ErrCannotAddSection),
		errors.Is(err, bulletin.ErrCannotSave),
		errors.Is(err, bulletin.ErrSaveInFlight),
		errors.Is(err, bulletin.ErrSessionClosed),
		errors.Is(err, bulletin.ErrPickerClosed),
		errors.Is(err, bulletin.ErrNotLoaded):
		return connect.CodeFailedPrecondition
	}
	return connect.CodeInternal
}

func toConnectError(err error) error {
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return cerr
	}
	return connect.NewError(codeOf(err), err)
}

// upstreamError is toConnectError for failures of the GitHub or database
// round trips of a page load.
func upstreamError(err error) error {
	if code := codeOf(err); code != connect.CodeInternal {
		return connect.NewError(code, err)
	}
	return connect.NewError(connect.CodeUnavailable, err)
}
