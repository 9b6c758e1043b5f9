package gateway

// Result is the uniform envelope every boundary call returns. Expected
// failure modes (bad credentials, not-found, transport faults) travel
// as Success=false with a human-readable Error; they are never raised
// as Go errors past the gateway.
//
// Invariant: Success implies Data is set and Error is empty; !Success
// implies Error is non-empty.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a successful payload.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: &data}
}

// Fail wraps a failure message.
func Fail[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

// Value unwraps Data for successful results; the zero value otherwise.
func (r Result[T]) Value() T {
	if r.Success && r.Data != nil {
		return *r.Data
	}
	var zero T
	return zero
}
