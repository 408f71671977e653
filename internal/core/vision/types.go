package vision

import "fmt"

// OCRResult is the canonical analysis of one uploaded image.
type OCRResult struct {
	Latex    string   `json:"latex"`
	Text     string   `json:"text"`
	Concepts []string `json:"concepts"`
}

// ServiceError marks a failed call to the upstream vision backend. The
// request that triggered it is terminal; there are no retries.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("vision service: %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
