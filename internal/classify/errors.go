package classify

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrBlankText is returned when the text to classify is empty or whitespace.
	ErrBlankText = errors.New("email text is blank")
	// ErrPrediction matches every failure of a submitted prediction request.
	ErrPrediction = errors.New("prediction failed")
)

// TransportError reports that the backend could not be reached or its
// response could not be read (connection refused, timeout, reset).
type TransportError struct {
	RequestID string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("prediction transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrPrediction }

// ServerError reports a non-2xx status from the backend.
type ServerError struct {
	RequestID  string
	StatusCode int
	Status     string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("prediction server error: %s", e.Status)
}

func (e *ServerError) Is(target error) bool { return target == ErrPrediction }

// MalformedResponseError reports a 2xx response without a usable category.
type MalformedResponseError struct {
	RequestID string
	Reason    string
	Err       error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed prediction response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed prediction response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool { return target == ErrPrediction }

// Kind names the failure class for logs.
func Kind(err error) string {
	var transport *TransportError
	var server *ServerError
	var malformed *MalformedResponseError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBlankText):
		return "validation"
	case errors.As(err, &transport):
		return "transport"
	case errors.As(err, &server):
		return "server"
	case errors.As(err, &malformed):
		return "malformed"
	default:
		return "unknown"
	}
}

// LogFields returns the diagnostic fields worth recording for a prediction
// failure. None of them are meant for the person using the view.
func LogFields(err error) []zap.Field {
	fields := []zap.Field{zap.String("kind", Kind(err)), zap.Error(err)}
	var transport *TransportError
	var server *ServerError
	var malformed *MalformedResponseError
	switch {
	case errors.As(err, &transport):
		fields = append(fields, zap.String("request_id", transport.RequestID))
	case errors.As(err, &server):
		fields = append(fields, zap.String("request_id", server.RequestID), zap.Int("status", server.StatusCode))
	case errors.As(err, &malformed):
		fields = append(fields, zap.String("request_id", malformed.RequestID), zap.String("reason", malformed.Reason))
	}
	return fields
}
