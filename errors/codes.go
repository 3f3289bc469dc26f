package errors

// ErrorCode identifies a category of application error
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota
	ErrorCode_VALIDATION
	ErrorCode_NOT_FOUND
	ErrorCode_UNAUTHENTICATED
	ErrorCode_AI_SUMMARY_FAILED
)

// String returns the machine-readable name of the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_VALIDATION:
		return "VALIDATION"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_UNAUTHENTICATED:
		return "UNAUTHENTICATED"
	case ErrorCode_AI_SUMMARY_FAILED:
		return "AI_SUMMARY_FAILED"
	default:
		return "INTERNAL"
	}
}
