package status

// ErrorCode is a numeric code to classify API errors in a stable way
type ErrorCode int

// Reserved ranges by domain:
//   0-999:     client/validation errors
//   1000-1999: image analysis
//   2000-2999: question generation
//   3000-3999: feedback generation

const (
	BadRequestBase    ErrorCode = 0
	InternalErrorBase ErrorCode = 1000
)

// Client/validation errors start at 0
const (
	InvalidRequestBody ErrorCode = BadRequestBase + iota // 0
	MissingAPIKey                                        // 1
	MissingImage                                         // 2
	MissingOCRResult                                     // 3
	MissingConcepts                                      // 4
	MissingAnswer                                        // 5
	UnsupportedImage                                     // 6
	ImageTooLarge                                        // 7
)

// Image analysis internal errors start at 1000
const (
	AnalyzeFailed ErrorCode = InternalErrorBase + iota // 1000
)

// Question generation internal errors start at 2000
const (
	QuestionFailed    ErrorCode = 2000 + iota // 2000
	SpecializedFailed                         // 2001
)

// Feedback generation internal errors start at 3000
const (
	FeedbackFailed ErrorCode = 3000 // 3000
)

// ErrorCodeInternal is the generic fallback for uncaught upstream failures
const (
	ErrorCodeInternal ErrorCode = 9000
)
