package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"stylehive/internal/metrics"
	"stylehive/internal/models"
	"stylehive/internal/notify"
	"stylehive/internal/receipt"

	"github.com/shopspring/decimal"
)

// CheckoutStep is a page of the checkout wizard.
type CheckoutStep int

const (
	StepShipping CheckoutStep = iota + 1
	StepPayment
	StepReview
)

func (s CheckoutStep) String() string {
	switch s {
	case StepShipping:
		return "Shipping"
	case StepPayment:
		return "Payment"
	case StepReview:
		return "Review"
	}
	return "Unknown"
}

// PaymentStatus tracks the receipt submission.
type PaymentStatus string

const (
	StatusIdle      PaymentStatus = "IDLE"
	StatusAnalyzing PaymentStatus = "ANALYZING"
	StatusSuccess   PaymentStatus = "SUCCESS"
	StatusError     PaymentStatus = "ERROR"
)

// Messages shown to the shopper.
const (
	msgMissingPaymentStep = "Please enter your phone number and upload the receipt to continue."
	msgMissingOnSubmit    = "Please provide both phone number and receipt."
	msgInvalidReceipt     = "The uploaded image does not appear to be a valid receipt."
	msgVerificationFailed = "An error occurred during verification. Please try again."
)

const notifyTimeout = 30 * time.Second

// SessionSource yields the signed-in user, if any.
type SessionSource interface {
	CurrentSession(ctx context.Context) (*models.User, error)
}

// CheckoutView is a read-only snapshot of the wizard.
type CheckoutView struct {
	Step            CheckoutStep            `json:"step"`
	StepName        string                  `json:"step_name"`
	Status          PaymentStatus           `json:"status"`
	ErrorMessage    string                  `json:"error_message,omitempty"`
	ReceiptSummary  string                  `json:"receipt_summary,omitempty"`
	ShippingOptions []models.ShippingOption `json:"shipping_options"`
	Shipping        models.ShippingOption   `json:"shipping"`
	Phone           string                  `json:"phone,omitempty"`
	GuestEmail      string                  `json:"guest_email,omitempty"`
	ReceiptName     string                  `json:"receipt_name,omitempty"`
	Items           []models.CartItem       `json:"items"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
	Total           decimal.Decimal         `json:"total"`
	Order           *models.Order           `json:"order,omitempty"`
}

// Checkout is the three-step wizard that turns the cart into an order:
// Shipping -> Payment -> Review, then an asynchronous submission that ends in
// Success or Error. At most one submission is in flight at a time.
type Checkout struct {
	cart     *Cart
	orders   *OrderService
	sessions SessionSource
	verifier receipt.Verifier
	notifier notify.Notifier
	timeout  time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu         sync.Mutex
	step       CheckoutStep
	status     PaymentStatus
	errMessage string
	summary    string
	shipping   models.ShippingOption
	phone      string
	guestEmail string
	receipt    *models.ReceiptFile
	order      *models.Order
}

// Totals returns the live cart subtotal and the final total with shipping.
func (c *Checkout) Totals() (subtotal, total decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal = c.cart.Total()
	return subtotal, subtotal.Add(c.shipping.Price)
}

// SelectShipping picks one of the fixed shipping options.
func (c *Checkout) SelectShipping(id string) error {
	opt, ok := models.FindShippingOption(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownShippingOption, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editableLocked(); err != nil {
		return err
	}
	c.shipping = opt
	return nil
}

// SetPaymentDetails records the contact phone, an optional guest email and the
// receipt. A nil receipt keeps the previously uploaded one. The guest email is
// dropped when somebody is signed in.
func (c *Checkout) SetPaymentDetails(ctx context.Context, phone, guestEmail string, file *models.ReceiptFile) error {
	session, err := c.sessions.CurrentSession(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editableLocked(); err != nil {
		return err
	}
	c.phone = strings.TrimSpace(phone)
	c.guestEmail = ""
	if session == nil {
		c.guestEmail = strings.TrimSpace(guestEmail)
	}
	if !file.Empty() {
		c.receipt = file
		c.errMessage = ""
	}
	return nil
}

// Next advances one step. Leaving the payment step requires a phone number and a receipt.
func (c *Checkout) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editableLocked(); err != nil {
		return err
	}
	c.errMessage = ""
	switch c.step {
	case StepPayment:
		if c.phone == "" || c.receipt.Empty() {
			c.errMessage = msgMissingPaymentStep
			return ErrMissingPaymentDetails
		}
	case StepReview:
		return fmt.Errorf("%w: review is the last step", ErrInvalidStep)
	}
	c.step++
	return nil
}

// Back returns to the previous step.
func (c *Checkout) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editableLocked(); err != nil {
		return err
	}
	if c.step == StepShipping {
		return fmt.Errorf("%w: shipping is the first step", ErrInvalidStep)
	}
	c.errMessage = ""
	c.step--
	return nil
}

func (c *Checkout) editableLocked() error {
	switch c.status {
	case StatusAnalyzing:
		return ErrSubmissionInFlight
	case StatusSuccess:
		return ErrCheckoutComplete
	}
	return nil
}

// Submit verifies the receipt and, when it is accepted, writes the order, fires
// the confirmation and empties the cart. The verifier is called once under the
// configured timeout; a rejection or a failure leaves the wizard on Review with a
// message and commits nothing, so the shopper may submit again.
func (c *Checkout) Submit(ctx context.Context) (*models.Order, error) {
	session, err := c.sessions.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if err := c.editableLocked(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if c.step != StepReview {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: submit from %s", ErrInvalidStep, c.step)
	}
	if c.phone == "" || c.receipt.Empty() {
		c.errMessage = msgMissingOnSubmit
		c.mu.Unlock()
		metrics.CheckoutSubmissions.WithLabelValues(metrics.OutcomeInvalidForm).Inc()
		return nil, ErrMissingPaymentDetails
	}
	items := c.cart.Items()
	if len(items) == 0 {
		c.mu.Unlock()
		return nil, ErrEmptyCart
	}
	shipping := c.shipping
	file := *c.receipt
	email := c.guestEmail
	if session != nil {
		email = session.Email
	}
	c.status = StatusAnalyzing
	c.errMessage = ""
	c.summary = ""
	c.mu.Unlock()

	analysis, verifyErr := c.verify(ctx, file)

	c.mu.Lock()
	defer c.mu.Unlock()

	if verifyErr != nil {
		c.logger.WarnContext(ctx, "receipt verification failed", "error", verifyErr)
		c.failLocked(msgVerificationFailed, "")
		metrics.CheckoutSubmissions.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w: %v", ErrVerificationUnavailable, verifyErr)
	}
	if !analysis.IsValid {
		c.failLocked(msgInvalidReceipt, analysis.Summary)
		metrics.CheckoutSubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, ErrReceiptRejected
	}

	now := c.now()
	shippingCost := shipping.Price
	order := models.Order{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Date:           now,
		UserEmail:      email,
		Items:          items,
		Total:          models.SumItems(items).Add(shipping.Price),
		Status:         models.OrderVerified,
		ReceiptSummary: analysis.Summary,
		ShippingMethod: shipping.Name,
		ShippingCost:   &shippingCost,
	}
	if err := c.orders.Append(ctx, &order); err != nil {
		c.logger.ErrorContext(ctx, "failed to save order", "order_id", order.ID, "error", err)
		c.failLocked(msgVerificationFailed, "")
		metrics.CheckoutSubmissions.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	c.status = StatusSuccess
	c.summary = analysis.Summary
	c.order = &order
	c.cart.Clear()
	metrics.CheckoutSubmissions.WithLabelValues(metrics.OutcomeVerified).Inc()
	c.logger.InfoContext(ctx, "order verified", "order_id", order.ID, "total", order.Total.StringFixed(2))

	go c.sendConfirmation(order)

	result := order
	return &result, nil
}

func (c *Checkout) verify(ctx context.Context, file models.ReceiptFile) (models.ReceiptAnalysis, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() { metrics.VerificationDuration.Observe(time.Since(start).Seconds()) }()

	return c.verifier.Verify(ctx, receipt.Encode(file))
}

func (c *Checkout) failLocked(message, summary string) {
	c.status = StatusError
	c.errMessage = message
	c.summary = summary
}

// sendConfirmation is fire-and-forget: failures are logged and never retried.
func (c *Checkout) sendConfirmation(order models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := c.notifier.SendConfirmation(ctx, order); err != nil {
		metrics.ConfirmationFailures.Inc()
		c.logger.Error("failed to send order confirmation", "order_id", order.ID, "error", err)
	}
}

// Status returns the submission status.
func (c *Checkout) Status() PaymentStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// View returns a snapshot of the wizard for rendering.
func (c *Checkout) View() CheckoutView {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := CheckoutView{
		Step:            c.step,
		StepName:        c.step.String(),
		Status:          c.status,
		ErrorMessage:    c.errMessage,
		ReceiptSummary:  c.summary,
		ShippingOptions: models.ShippingOptions(),
		Shipping:        c.shipping,
		Phone:           c.phone,
		GuestEmail:      c.guestEmail,
		Items:           c.cart.Items(),
		Order:           c.order,
	}
	if c.order != nil {
		v.Items = c.order.Items
		v.Subtotal = c.order.Subtotal()
		v.Total = c.order.Total
	} else {
		v.Subtotal = models.SumItems(v.Items)
		v.Total = v.Subtotal.Add(c.shipping.Price)
	}
	if c.receipt != nil {
		v.ReceiptName = c.receipt.Name
	}
	return v
}
