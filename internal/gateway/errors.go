package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Outcome is the protocol-agnostic result of a gateway call.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeInvalid
	OutcomeRemote
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "remote_error"
	}
}

// remoteOutcomes maps backend status codes to outcomes. Codes that are not
// listed are remote errors.
var remoteOutcomes = map[codes.Code]Outcome{
	codes.OK:       OutcomeOK,
	codes.NotFound: OutcomeNotFound,
}

// httpStatuses maps outcomes to the status the HTTP layer renders.
var httpStatuses = map[Outcome]int{
	OutcomeOK:       http.StatusOK,
	OutcomeNotFound: http.StatusNotFound,
	OutcomeInvalid:  http.StatusBadRequest,
	OutcomeRemote:   http.StatusInternalServerError,
}

// ValidationError reports a request rejected before any RPC was issued.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("'%s' field can't be empty.", e.Field)
}

// NotFoundError reports a lookup of an absent key.
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("key %q not found", e.Key)
}

// RemoteError wraps any backend failure other than NotFound.
type RemoteError struct {
	Method string
	Code   codes.Code
	Err    error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Method, e.Code, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// ConnectFailure is returned when the retry budget is exhausted.
type ConnectFailure struct {
	Endpoint string
	Attempts int
	Err      error
}

func (e *ConnectFailure) Error() string {
	return fmt.Sprintf("failed to connect to %s after %d attempts: %v", e.Endpoint, e.Attempts, e.Err)
}

func (e *ConnectFailure) Unwrap() error {
	return e.Err
}

// translate converts an RPC error into one of the gateway's error variants.
func translate(method, key string, err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	outcome, ok := remoteOutcomes[st.Code()]
	if !ok {
		outcome = OutcomeRemote
	}

	switch outcome {
	case OutcomeOK:
		return nil
	case OutcomeNotFound:
		return &NotFoundError{Key: key, Message: st.Message()}
	default:
		return &RemoteError{Method: method, Code: st.Code(), Err: err}
	}
}

// Classify returns the outcome represented by err.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}

	var notFound *NotFoundError
	var invalid *ValidationError
	switch {
	case errors.As(err, &notFound):
		return OutcomeNotFound
	case errors.As(err, &invalid):
		return OutcomeInvalid
	default:
		return OutcomeRemote
	}
}

// HTTPStatus returns the HTTP status code for the outcome of err.
func HTTPStatus(err error) int {
	return httpStatuses[Classify(err)]
}
