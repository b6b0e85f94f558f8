// Package receipt defines the verification collaborator consulted at checkout.
package receipt

import (
	"context"
	"encoding/base64"
	"time"

	"stylehive/internal/models"
)

// Verifier judges whether an encoded receipt image is acceptable.
// It is called once per submission and never retried.
type Verifier interface {
	Verify(ctx context.Context, encodedImage string) (models.ReceiptAnalysis, error)
}

// VerifierFunc adapts a plain function to Verifier.
type VerifierFunc func(ctx context.Context, encodedImage string) (models.ReceiptAnalysis, error)

func (f VerifierFunc) Verify(ctx context.Context, encodedImage string) (models.ReceiptAnalysis, error) {
	return f(ctx, encodedImage)
}

// Encode prepares a receipt file for transmission.
func Encode(file models.ReceiptFile) string {
	return base64.StdEncoding.EncodeToString(file.Data)
}

// Simulated accepts every receipt after a fixed delay. No content is inspected.
type Simulated struct {
	Delay time.Duration
}

// NewSimulated creates a simulated verifier.
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay}
}

// Verify waits for the configured delay and reports the receipt as valid.
func (s *Simulated) Verify(ctx context.Context, _ string) (models.ReceiptAnalysis, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return models.ReceiptAnalysis{}, ctx.Err()
	case <-timer.C:
	}
	return models.ReceiptAnalysis{
		IsValid:        true,
		Summary:        "Receipt received. Submitted for manual review.",
		DetectedAmount: "Unknown",
	}, nil
}
