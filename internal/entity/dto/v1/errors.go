package dto

import "github.com/plm-management-toolkit/gateway/pkg/gatewayerrors"

// NotValidError flags bad caller input. It never reaches the remote system.
type NotValidError struct {
	Console gatewayerrors.GatewayError
}

func (e NotValidError) Error() string {
	return e.Console.Error()
}

func (e NotValidError) Wrap(call, function string, err error) NotValidError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}
