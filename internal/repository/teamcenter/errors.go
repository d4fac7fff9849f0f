package teamcenter

import "github.com/plm-management-toolkit/gateway/pkg/gatewayerrors"

const errComponent = "TeamcenterClient"

// Error kinds produced by the client's error translation. The transport layer
// switches on these types, never on message text.
type (
	// AuthenticationError is raised when the remote rejects a login attempt.
	AuthenticationError struct {
		Console gatewayerrors.GatewayError
	}

	// UnauthenticatedError maps remote 401: the session expired or is invalid.
	UnauthenticatedError struct {
		Console gatewayerrors.GatewayError
	}

	// ForbiddenError maps remote 403.
	ForbiddenError struct {
		Console gatewayerrors.GatewayError
	}

	// NotFoundError maps remote 404.
	NotFoundError struct {
		Console gatewayerrors.GatewayError
	}

	// RemoteInternalError maps remote 500 and carries the remote-supplied
	// message for diagnostics.
	RemoteInternalError struct {
		Console       gatewayerrors.GatewayError
		RemoteMessage string
	}

	// RemoteUnavailableError maps remote 503.
	RemoteUnavailableError struct {
		Console gatewayerrors.GatewayError
	}

	// TimeoutError is raised when the per-call deadline fires.
	TimeoutError struct {
		Console gatewayerrors.GatewayError
	}

	// ConnectionRefusedError is raised when the remote refuses the socket.
	ConnectionRefusedError struct {
		Console gatewayerrors.GatewayError
	}

	// NetworkError covers every other transport failure, including
	// unexpected remote status codes.
	NetworkError struct {
		Console gatewayerrors.GatewayError
	}
)

var (
	ErrAuthentication    = AuthenticationError{Console: gatewayerrors.NewWithMessage(errComponent, "Authentication failed. Check your credentials.")}
	ErrUnauthenticated   = UnauthenticatedError{Console: gatewayerrors.NewWithMessage(errComponent, "Session expired or invalid. Log in again.")}
	ErrForbidden         = ForbiddenError{Console: gatewayerrors.NewWithMessage(errComponent, "Permission denied by the PLM system.")}
	ErrNotFound          = NotFoundError{Console: gatewayerrors.NewWithMessage(errComponent, "Resource not found in the PLM system.")}
	ErrRemoteInternal    = RemoteInternalError{Console: gatewayerrors.NewWithMessage(errComponent, "The PLM system reported an internal error.")}
	ErrRemoteUnavailable = RemoteUnavailableError{Console: gatewayerrors.NewWithMessage(errComponent, "The PLM system is unavailable. Try again later.")}
	ErrTimeout           = TimeoutError{Console: gatewayerrors.NewWithMessage(errComponent, "Connection to the PLM system timed out.")}
	ErrConnectionRefused = ConnectionRefusedError{Console: gatewayerrors.NewWithMessage(errComponent, "Connection refused by the PLM system. Check the configured URL and port.")}
	ErrNetwork           = NetworkError{Console: gatewayerrors.NewWithMessage(errComponent, "Network error while contacting the PLM system.")}
)

func (e AuthenticationError) Error() string { return e.Console.Error() }

func (e AuthenticationError) Wrap(call, function string, err error) AuthenticationError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

func (e UnauthenticatedError) Error() string { return e.Console.Error() }

func (e UnauthenticatedError) Wrap(call, function string, err error) UnauthenticatedError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

func (e ForbiddenError) Error() string { return e.Console.Error() }

func (e ForbiddenError) Wrap(call, function string, err error) ForbiddenError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

func (e NotFoundError) Error() string { return e.Console.Error() }

func (e NotFoundError) Wrap(call, function string, err error) NotFoundError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

func (e RemoteInternalError) Error() string { return e.Console.Error() }

func (e RemoteInternalError) Wrap(call, function string, err error) RemoteInternalError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

func (e RemoteUnavailableError) Error() string { return e.Console.Error() }

func (e RemoteUnavailableError) Wrap(call, function string, err error) RemoteUnavailableError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

func (e TimeoutError) Error() string { return e.Console.Error() }

func (e TimeoutError) Wrap(call, function string, err error) TimeoutError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

func (e ConnectionRefusedError) Error() string { return e.Console.Error() }

func (e ConnectionRefusedError) Wrap(call, function string, err error) ConnectionRefusedError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

func (e NetworkError) Error() string { return e.Console.Error() }

func (e NetworkError) Wrap(call, function string, err error) NetworkError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}
