package services_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"stylehive/internal/models"
	"stylehive/internal/services"
	"stylehive/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// toReview fills the cart, opens the wizard and walks it to the review step.
func toReview(t *testing.T, front *services.Storefront, shipping string) *services.Checkout {
	t.Helper()
	ctx := context.Background()

	_, err := front.AddToCart(ctx, 1) // 29.00
	require.NoError(t, err)
	_, err = front.AddToCart(ctx, 1)
	require.NoError(t, err)
	_, err = front.AddToCart(ctx, 3) // 89.00
	require.NoError(t, err)

	checkout, err := front.BeginCheckout()
	require.NoError(t, err)
	require.NoError(t, checkout.SelectShipping(shipping))
	require.NoError(t, checkout.Next())
	require.NoError(t, checkout.SetPaymentDetails(ctx, "+1 555 987 6543", "guest@example.com", receiptFile()))
	require.NoError(t, checkout.Next())
	require.Equal(t, services.StepReview, checkout.View().Step)
	return checkout
}

func TestCheckout_SubmitVerifiedCreatesOrder(t *testing.T) {
	ctx := context.Background()
	verifier := new(MockVerifier)
	notifier := new(MockNotifier)
	front := newStorefront(t, verifier, notifier)

	sent := make(chan models.Order, 1)
	verifier.On("Verify", mock.Anything, "anBlZw==").
		Return(models.ReceiptAnalysis{IsValid: true, Summary: "Bank transfer of $161.99", DetectedAmount: "161.99"}, nil).Once()
	notifier.On("SendConfirmation", mock.Anything, mock.AnythingOfType("models.Order")).
		Run(func(args mock.Arguments) { sent <- args.Get(1).(models.Order) }).
		Return(nil).Once()

	checkout := toReview(t, front, "express")
	subtotal, total := checkout.Totals()
	assert.Equal(t, "147.00", subtotal.StringFixed(2))
	assert.Equal(t, "161.99", total.StringFixed(2))

	order, err := checkout.Submit(ctx)
	require.NoError(t, err)

	assert.Equal(t, strconv.FormatInt(fixedNow.UnixMilli(), 10), order.ID)
	assert.Equal(t, models.OrderVerified, order.Status)
	assert.Equal(t, "161.99", order.Total.StringFixed(2))
	assert.Equal(t, "Express Shipping", order.ShippingMethod)
	assert.Equal(t, "14.99", order.ShippingCostOrZero().StringFixed(2))
	assert.Equal(t, "guest@example.com", order.UserEmail)
	assert.Equal(t, "Bank transfer of $161.99", order.ReceiptSummary)
	assert.Len(t, order.Items, 2)

	orders, err := front.Orders.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	assert.True(t, front.Cart.Empty(), "cart is cleared on success")

	view := checkout.View()
	assert.Equal(t, services.StatusSuccess, view.Status)
	require.NotNil(t, view.Order)
	assert.Equal(t, "161.99", view.Total.StringFixed(2))

	select {
	case confirmed := <-sent:
		assert.Equal(t, order.ID, confirmed.ID)
	case <-time.After(time.Second):
		t.Fatal("confirmation was not sent")
	}

	// A finished wizard refuses further edits.
	assert.ErrorIs(t, checkout.Back(), services.ErrCheckoutComplete)
	_, err = checkout.Submit(ctx)
	assert.ErrorIs(t, err, services.ErrCheckoutComplete)
	verifier.AssertExpectations(t)
}

func TestCheckout_SubmitRejectedLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	verifier := new(MockVerifier)
	notifier := new(MockNotifier)
	front := newStorefront(t, verifier, notifier)

	verifier.On("Verify", mock.Anything, mock.Anything).
		Return(models.ReceiptAnalysis{IsValid: false, Summary: "A photo of a cat"}, nil).Once()

	checkout := toReview(t, front, "standard")
	order, err := checkout.Submit(ctx)
	assert.ErrorIs(t, err, services.ErrReceiptRejected)
	assert.Nil(t, order)

	orders, err := front.Orders.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.False(t, front.Cart.Empty())

	view := checkout.View()
	assert.Equal(t, services.StepReview, view.Step)
	assert.Equal(t, services.StatusError, view.Status)
	assert.Equal(t, "The uploaded image does not appear to be a valid receipt.", view.ErrorMessage)
	assert.Equal(t, "A photo of a cat", view.ReceiptSummary)
	notifier.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything)

	// The shopper may retry.
	verifier.On("Verify", mock.Anything, mock.Anything).
		Return(models.ReceiptAnalysis{IsValid: true, Summary: "ok"}, nil).Once()
	notifier.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil).Maybe()

	order, err = checkout.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "152.99", order.Total.StringFixed(2))
	assert.Empty(t, checkout.View().ErrorMessage)
}

func TestCheckout_VerifierErrorMapsToRetryMessage(t *testing.T) {
	ctx := context.Background()
	verifier := new(MockVerifier)
	front := newStorefront(t, verifier, new(MockNotifier))

	verifier.On("Verify", mock.Anything, mock.Anything).
		Return(models.ReceiptAnalysis{}, errors.New("connection reset")).Once()

	checkout := toReview(t, front, "standard")
	_, err := checkout.Submit(ctx)
	assert.ErrorIs(t, err, services.ErrVerificationUnavailable)

	view := checkout.View()
	assert.Equal(t, services.StatusError, view.Status)
	assert.Equal(t, "An error occurred during verification. Please try again.", view.ErrorMessage)

	orders, err := front.Orders.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckout_VerifierTimeout(t *testing.T) {
	ctx := context.Background()
	hanging := new(MockVerifier)
	hanging.On("Verify", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { <-args.Get(0).(context.Context).Done() }).
		Return(models.ReceiptAnalysis{}, context.DeadlineExceeded).Once()

	front := services.NewStorefront("timeout-client", services.Dependencies{
		Store:         storage.NewMemoryStore(),
		Verifier:      hanging,
		Notifier:      new(MockNotifier),
		VerifyTimeout: 20 * time.Millisecond,
		Logger:        discardLogger(),
		Now:           func() time.Time { return fixedNow },
	})

	checkout := toReview(t, front, "standard")
	_, err := checkout.Submit(ctx)
	assert.ErrorIs(t, err, services.ErrVerificationUnavailable)
	assert.Equal(t, services.StatusError, checkout.Status())
	hanging.AssertExpectations(t)
}

func TestCheckout_SingleSubmissionInFlight(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	verifier := new(MockVerifier)
	verifier.On("Verify", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(models.ReceiptAnalysis{IsValid: true, Summary: "ok"}, nil).Once()
	notifier := new(MockNotifier)
	notifier.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil).Maybe()

	front := newStorefront(t, verifier, notifier)
	checkout := toReview(t, front, "standard")

	done := make(chan error, 1)
	go func() {
		_, err := checkout.Submit(ctx)
		done <- err
	}()

	assert.Eventually(t, func() bool { return checkout.Status() == services.StatusAnalyzing }, time.Second, 5*time.Millisecond)

	_, err := checkout.Submit(ctx)
	assert.ErrorIs(t, err, services.ErrSubmissionInFlight)
	assert.ErrorIs(t, checkout.Back(), services.ErrSubmissionInFlight)
	assert.ErrorIs(t, checkout.Next(), services.ErrSubmissionInFlight)
	_, err = front.BeginCheckout()
	assert.ErrorIs(t, err, services.ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)

	orders, err := front.Orders.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	verifier.AssertExpectations(t)
}

func TestCheckout_StepNavigation(t *testing.T) {
	ctx := context.Background()
	front := newStorefront(t, new(MockVerifier), new(MockNotifier))

	_, err := front.BeginCheckout()
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	_, err = front.Checkout()
	assert.ErrorIs(t, err, services.ErrNoCheckout)

	_, err = front.AddToCart(ctx, 2)
	require.NoError(t, err)
	assert.True(t, front.Cart.IsOpen())

	checkout, err := front.BeginCheckout()
	require.NoError(t, err)
	assert.False(t, front.Cart.IsOpen(), "opening checkout closes the cart panel")

	view := checkout.View()
	assert.Equal(t, services.StepShipping, view.Step)
	assert.Equal(t, "standard", view.Shipping.ID)
	assert.Len(t, view.ShippingOptions, 2)

	assert.ErrorIs(t, checkout.Back(), services.ErrInvalidStep)
	assert.ErrorIs(t, checkout.SelectShipping("drone"), services.ErrUnknownShippingOption)

	require.NoError(t, checkout.Next())
	_, err = checkout.Submit(ctx)
	assert.ErrorIs(t, err, services.ErrInvalidStep)

	// Payment step needs a phone and a receipt before moving on.
	assert.ErrorIs(t, checkout.Next(), services.ErrMissingPaymentDetails)
	assert.Equal(t, "Please enter your phone number and upload the receipt to continue.", checkout.View().ErrorMessage)

	require.NoError(t, checkout.SetPaymentDetails(ctx, "555", "", nil))
	assert.ErrorIs(t, checkout.Next(), services.ErrMissingPaymentDetails)

	require.NoError(t, checkout.SetPaymentDetails(ctx, "555", "", receiptFile()))
	require.NoError(t, checkout.Next())
	assert.Equal(t, services.StepReview, checkout.View().Step)
	assert.Empty(t, checkout.View().ErrorMessage)
	assert.Equal(t, "receipt.jpg", checkout.View().ReceiptName)

	assert.ErrorIs(t, checkout.Next(), services.ErrInvalidStep)

	require.NoError(t, checkout.Back())
	assert.Equal(t, services.StepPayment, checkout.View().Step)

	// A fresh wizard replaces an idle one.
	again, err := front.BeginCheckout()
	require.NoError(t, err)
	assert.Equal(t, services.StepShipping, again.View().Step)
	current, err := front.Checkout()
	require.NoError(t, err)
	assert.Same(t, again, current)
}

func TestCheckout_SessionEmailWinsOverGuestEmail(t *testing.T) {
	ctx := context.Background()
	verifier := new(MockVerifier)
	notifier := new(MockNotifier)
	front := newStorefront(t, verifier, notifier)

	_, err := front.Auth.Register(ctx, "Ana", "ana@example.com", "pw")
	require.NoError(t, err)

	verifier.On("Verify", mock.Anything, mock.Anything).Return(models.ReceiptAnalysis{IsValid: true, Summary: "ok"}, nil).Once()
	notifier.On("SendConfirmation", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Maybe()

	checkout := toReview(t, front, "standard")
	assert.Empty(t, checkout.View().GuestEmail)

	order, err := checkout.Submit(ctx)
	require.NoError(t, err, "notification failures are not surfaced")
	assert.Equal(t, "ana@example.com", order.UserEmail)
}
