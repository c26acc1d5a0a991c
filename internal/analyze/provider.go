// Package analyze abstracts the face-analysis step behind a Provider
// interface so backends can be swapped (or stubbed in tests) without the
// rest of the system knowing which one runs.
package analyze

import "context"

// Indicator is one raw signal reported by an analysis backend.
// Indicator names are mapped to user-facing issue labels by the scan layer.
type Indicator struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"` // 0-1
}

// Detection is the result of analyzing a single face image.
type Detection struct {
	Indicators []Indicator `json:"indicators"`
}

// Provider defines the interface for face-analysis backends.
type Provider interface {
	Name() string
	AnalyzeFace(ctx context.Context, imageData []byte) (*Detection, error)
}
