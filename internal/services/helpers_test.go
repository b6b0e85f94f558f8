package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"stylehive/internal/models"
	"stylehive/internal/services"
	"stylehive/internal/storage"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// MockVerifier is a mock implementation of receipt.Verifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, encodedImage string) (models.ReceiptAnalysis, error) {
	args := m.Called(ctx, encodedImage)
	return args.Get(0).(models.ReceiptAnalysis), args.Error(1)
}

// MockNotifier is a mock implementation of notify.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendConfirmation(ctx context.Context, order models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStorefront(t *testing.T, verifier *MockVerifier, notifier *MockNotifier) *services.Storefront {
	t.Helper()
	return services.NewStorefront("test-client", services.Dependencies{
		Store:    storage.NewMemoryStore(),
		Verifier: verifier,
		Notifier: notifier,
		Admin:    services.DefaultAdminCredential,
		Logger:   discardLogger(),
		Now:      func() time.Time { return fixedNow },
	})
}

func receiptFile() *models.ReceiptFile {
	return &models.ReceiptFile{Name: "receipt.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")}
}
