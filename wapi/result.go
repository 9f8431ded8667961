package wapi

import (
	"errors"
	"fmt"
	"time"
)

// Result is the success/failure envelope returned by every API call.
// Exactly one of data or err is meaningful, depending on the tag.
type Result[T any] struct {
	ok        bool
	data      T
	err       error
	timestamp int64 // ms since epoch
}

// Success wraps data in a successful Result stamped with the current time.
func Success[T any](data T) Result[T] {
	return Result[T]{ok: true, data: data, timestamp: time.Now().UnixMilli()}
}

// Failure creates a failed Result with the given message.
func Failure[T any](message string) Result[T] {
	return FailureErr[T](errors.New(message))
}

// FailureErr creates a failed Result carrying a structured error.
// The failure message is err.Error().
func FailureErr[T any](err error) Result[T] {
	return failureAt[T](err, time.Now().UnixMilli())
}

func failureAt[T any](err error, ts int64) Result[T] {
	if err == nil {
		err = ErrFailedResult
	}
	return Result[T]{err: err, timestamp: ts}
}

// IsSuccess reports whether the Result holds data.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the Result holds an error.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Data returns the payload, or an error wrapping the failure.
func (r Result[T]) Data() (T, error) {
	if !r.ok {
		var zero T
		return zero, fmt.Errorf("cannot get data from failed result: %w", r.failure())
	}
	return r.data, nil
}

// DataOrZero returns the payload, or the zero value of T on failure.
func (r Result[T]) DataOrZero() T {
	if !r.ok {
		var zero T
		return zero
	}
	return r.data
}

// Err returns the failure error, or nil on success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.failure()
}

// failure returns the stored error. The zero Result has none.
func (r Result[T]) failure() error {
	if r.err == nil {
		return ErrFailedResult
	}
	return r.err
}

// ErrorMessage returns the failure message, or "" on success.
func (r Result[T]) ErrorMessage() string {
	if r.ok {
		return ""
	}
	return r.failure().Error()
}

// Timestamp returns the time the Result was captured.
func (r Result[T]) Timestamp() time.Time {
	return time.UnixMilli(r.timestamp)
}

// TimestampMillis returns the capture time in milliseconds since epoch.
func (r Result[T]) TimestampMillis() int64 {
	return r.timestamp
}

// OnSuccess calls fn with the payload when the Result is a success.
func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	if r.ok {
		fn(r.data)
	}
	return r
}

// OnFailure calls fn with the error when the Result is a failure.
func (r Result[T]) OnFailure(fn func(error)) Result[T] {
	if !r.ok {
		fn(r.failure())
	}
	return r
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success{data=%v, timestamp=%d}", r.data, r.timestamp)
	}
	return fmt.Sprintf("Failure{error=%q, timestamp=%d}", r.failure().Error(), r.timestamp)
}

// Map transforms the payload of a successful Result. The original timestamp is
// kept on both paths. A transform that returns an error or panics turns the
// Result into a failure.
func Map[T, R any](r Result[T], fn func(T) (R, error)) (out Result[R]) {
	if !r.ok {
		return failureAt[R](r.failure(), r.timestamp)
	}

	defer func() {
		if p := recover(); p != nil {
			out = failureAt[R](&MappingError{Err: fmt.Errorf("%v", p)}, r.timestamp)
		}
	}()

	mapped, err := fn(r.data)
	if err != nil {
		return failureAt[R](&MappingError{Err: err}, r.timestamp)
	}
	return Result[R]{ok: true, data: mapped, timestamp: r.timestamp}
}
