package results

// Kind classifies the outcome of a domain operation. Expected business
// conditions (missing entity, duplicate name, foreign order) are reported as
// Result values, not errors; only infrastructure faults travel as Go errors.
type Kind int

const (
	Success Kind = iota
	Created
	NoContent
	NotFound
	Duplicated
	Unauthorized
	Failure
)

// Result is the uniform outcome type returned by every service operation.
// Data is only meaningful for Success and Created; Message carries a
// caller-safe explanation for the rejection variants.
type Result[T any] struct {
	Kind    Kind
	Data    T
	Message string
}

// Ok returns a Success result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{Kind: Success, Data: data}
}

// CreatedResult returns a Created result carrying the new entity's response.
func CreatedResult[T any](data T) Result[T] {
	return Result[T]{Kind: Created, Data: data}
}

// NoContentResult reports a successful deletion with nothing to return.
func NoContentResult[T any]() Result[T] {
	return Result[T]{Kind: NoContent}
}

// NotFoundResult reports a missing entity or an unmet business precondition.
func NotFoundResult[T any](message string) Result[T] {
	return Result[T]{Kind: NotFound, Message: message}
}

// DuplicatedResult reports a uniqueness violation.
func DuplicatedResult[T any](message string) Result[T] {
	return Result[T]{Kind: Duplicated, Message: message}
}

// UnauthorizedResult reports that the authenticated caller does not own the
// resource.
func UnauthorizedResult[T any](message string) Result[T] {
	return Result[T]{Kind: Unauthorized, Message: message}
}

// FailureResult reports a generic rejection.
func FailureResult[T any](message string) Result[T] {
	return Result[T]{Kind: Failure, Message: message}
}
