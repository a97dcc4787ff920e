package models

// OperationState tracks a single asynchronous operation such as a search or a
// submit. Every new trigger moves the state back to OperationLoading.
type OperationState int

const (
	OperationIdle OperationState = iota
	OperationLoading
	OperationSuccess
	OperationError
)

// String returns the lowercase name of the state.
func (s OperationState) String() string {
	switch s {
	case OperationIdle:
		return "idle"
	case OperationLoading:
		return "loading"
	case OperationSuccess:
		return "success"
	case OperationError:
		return "error"
	default:
		return "unknown"
	}
}
