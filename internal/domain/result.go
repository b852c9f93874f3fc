package domain

// ResultKind discriminates the variants of Result.
type ResultKind int

const (
	KindLoading ResultKind = iota
	KindSuccess
	KindFailure
)

func (k ResultKind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is one emitted state of a data operation. Loading and Failure may
// carry the best currently-available cached value; Success always carries
// data. Terminal reports whether the state is Success or Failure.
type Result[T any] struct {
	Kind    ResultKind
	Data    T
	HasData bool
	Err     error
}

// Loading is the initial state, before the cache has produced anything.
func Loading[T any]() Result[T] {
	return Result[T]{Kind: KindLoading}
}

// LoadingWith is a loading state carrying the current cached value.
func LoadingWith[T any](data T) Result[T] {
	return Result[T]{Kind: KindLoading, Data: data, HasData: true}
}

// Success is a terminal state carrying data.
func Success[T any](data T) Result[T] {
	return Result[T]{Kind: KindSuccess, Data: data, HasData: true}
}

// Failure is a terminal error state with no cached value.
func Failure[T any](err error) Result[T] {
	return Result[T]{Kind: KindFailure, Err: err}
}

// FailureWith is a terminal error state carrying the last-known cached value.
func FailureWith[T any](err error, data T) Result[T] {
	return Result[T]{Kind: KindFailure, Err: err, Data: data, HasData: true}
}

// Terminal reports whether the result is Success or Failure.
func (r Result[T]) Terminal() bool {
	return r.Kind != KindLoading
}
