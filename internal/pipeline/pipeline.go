// Package pipeline orchestrates one order session: collect, validate, price,
// route through the payment sub-flow, submit, reconcile the result. All
// session state (pending order, retry handle, check sequencing) lives on the
// Pipeline value; there are no package globals.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"jerseyform/internal/api"
	"jerseyform/internal/config"
	"jerseyform/internal/domain"
	apperrors "jerseyform/internal/errors"
	"jerseyform/internal/pricing"
	"jerseyform/internal/validate"
)

type State string

const (
	StateEditing         State = "EDITING"
	StateAwaitingPayment State = "AWAITING_PAYMENT_CHOICE"
	StateSubmitting      State = "SUBMITTING"
	StateSucceeded       State = "SUCCEEDED"
	StateFailed          State = "FAILED"
)

var (
	ErrNoPendingOrder        = errors.New("no pending order")
	ErrSubmissionInFlight    = errors.New("submission already in flight")
	ErrMissingTransactionRef = errors.New("transaction reference is required")
	ErrRetryExhausted        = errors.New("maximum retry attempts reached")
)

const defaultMaxRetries = 3

// APIClient is what the pipeline needs from the remote order service.
type APIClient interface {
	CreateOrder(ctx context.Context, payload domain.OrderPayload) (*api.OrderResult, error)
	CheckJerseyNumber(ctx context.Context, number, batch string) (*api.Availability, error)
	CheckNameExists(ctx context.Context, name string) (*api.NameCheck, error)
	HealthCheck(ctx context.Context) error
}

// PendingOrder is the validated draft waiting for a payment choice.
type PendingOrder struct {
	Draft     domain.OrderDraft
	BasePrice int
}

// Result is the reconciled outcome of a submission. Fallback marks a
// display-only id synthesized client-side; it is never sent to the server.
type Result struct {
	OrderID  string
	Fallback bool
}

type Pipeline struct {
	prices   pricing.Table
	api      APIClient
	notifier Notifier
	logger   *zap.Logger
	debounce *Debouncer

	department     string
	fallbackPrefix string
	maxRetries     int
	now            func() time.Time

	mu          sync.Mutex
	state       State
	pending     *PendingOrder
	lastPayload *domain.OrderPayload
	retryCount  int
	inFlight    bool
	checkSeq    map[string]uint64
}

func New(prices pricing.Table, apiClient APIClient, notifier Notifier, logger *zap.Logger, cfg config.OrderConfig) *Pipeline {
	maxRetries := cfg.MaxRetryAttempts
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	quiet := cfg.DebounceQuiet
	if quiet <= 0 {
		quiet = 500 * time.Millisecond
	}

	return &Pipeline{
		prices:         prices,
		api:            apiClient,
		notifier:       notifier,
		logger:         logger,
		debounce:       NewDebouncer(quiet),
		department:     cfg.Department,
		fallbackPrefix: cfg.FallbackIDPrefix,
		maxRetries:     maxRetries,
		now:            time.Now,
		state:          StateEditing,
		checkSeq:       make(map[string]uint64),
	}
}

// State reports the session's position in the submission lifecycle.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Start runs the startup health check. A failure only produces a warning;
// the form stays usable.
func (p *Pipeline) Start(ctx context.Context) {
	if err := p.api.HealthCheck(ctx); err != nil {
		p.logger.Warn("backend connection failed", zap.Error(err))
		p.notifier.ShowMessage(ChannelWarning, "Backend Connection Issue",
			"Unable to connect to server. Some features may not work properly.")
		return
	}
	p.logger.Info("backend connected")
}

// ValidateField runs one field's validator and updates its decoration; used
// on blur and, once a field errored, on debounced input.
func (p *Pipeline) ValidateField(field, value string) {
	if msg := validate.Field(field, value); msg != "" {
		p.notifier.FieldError(field, msg)
		return
	}
	if strings.TrimSpace(value) != "" || field == "batch" {
		p.notifier.FieldSuccess(field)
	}
}

// Submit re-validates the whole form. On failure every failed field is
// annotated, the first one gets focus, and no submission happens. On success
// the validated draft becomes the pending order (overwriting any prior one)
// and the session awaits a payment choice. Returns the base price.
func (p *Pipeline) Submit(values map[string]string) (int, error) {
	failures := validate.Form(values)
	if len(failures) > 0 {
		details := make([]apperrors.ValidationDetail, len(failures))
		for i, f := range failures {
			details[i] = apperrors.ValidationDetail{Field: f.Field, Message: f.Message}
			p.notifier.FieldError(f.Field, f.Message)
		}
		p.notifier.FocusField(failures[0].Field)
		p.notifier.ShowMessage(ChannelError, "Form Validation Failed",
			"Please correct the highlighted fields and try again.")

		p.mu.Lock()
		p.state = StateEditing
		p.mu.Unlock()

		return 0, apperrors.NewValidationError("validation failed", details...)
	}

	draft := domain.DraftFromValues(values)
	base := p.prices.Price(draft.CollarType, draft.SleeveType)

	p.mu.Lock()
	p.pending = &PendingOrder{Draft: draft, BasePrice: base}
	p.state = StateAwaitingPayment
	p.mu.Unlock()

	p.logger.Info("order validated, awaiting payment choice",
		zap.String("jerseyNumber", draft.JerseyNumber), zap.Int("basePrice", base))

	return base, nil
}

// ConfirmCash finalizes the pending order as cash-on-delivery; the charged
// amount is the base price.
func (p *Pipeline) ConfirmCash(ctx context.Context) (*Result, error) {
	p.mu.Lock()
	if p.pending == nil {
		p.mu.Unlock()
		return nil, ErrNoPendingOrder
	}
	payload := p.buildPayload(*p.pending, domain.PaymentSelection{Method: domain.PaymentCOD})
	p.mu.Unlock()

	return p.submit(ctx, payload)
}

// ConfirmOnline finalizes the pending order as an online transfer. An empty
// transaction reference blocks: no state transition, no network call. The
// reported price is reset to the charged amount so downstream records show
// what was actually paid.
func (p *Pipeline) ConfirmOnline(ctx context.Context, provider domain.PaymentProvider, transactionRef string) (*Result, error) {
	ref := strings.TrimSpace(transactionRef)
	if ref == "" {
		p.notifier.FieldError("transactionRef", "Transaction ID is required")
		return nil, ErrMissingTransactionRef
	}

	p.mu.Lock()
	if p.pending == nil {
		p.mu.Unlock()
		return nil, ErrNoPendingOrder
	}
	payload := p.buildPayload(*p.pending, domain.PaymentSelection{
		Method:         domain.PaymentOnline,
		Provider:       provider,
		TransactionRef: ref,
	})
	p.mu.Unlock()

	return p.submit(ctx, payload)
}

// TransactionRefEdited clears the reference's error indicator; called as
// soon as the user types any character.
func (p *Pipeline) TransactionRefEdited() {
	p.notifier.ClearField("transactionRef")
}

func (p *Pipeline) buildPayload(pending PendingOrder, selection domain.PaymentSelection) domain.OrderPayload {
	draft := pending.Draft
	payload := domain.OrderPayload{
		Name:         draft.Name,
		ContactID:    draft.ContactID,
		JerseyNumber: draft.JerseyNumber,
		Size:         draft.Size,
		CollarType:   draft.CollarType,
		SleeveType:   draft.SleeveType,
		Email:        draft.Email,
		Batch:        draft.Batch,
		Notes:        draft.Notes,
		OrderDate:    p.now().UTC().Format(time.RFC3339),
		Department:   p.department,
	}

	if selection.Method == domain.PaymentOnline {
		provider := selection.Provider
		if provider == "" {
			provider = domain.ProviderBkash
		}
		charged := pending.BasePrice + p.prices.Surcharge()
		payload.PaymentMethod = string(domain.PaymentOnline)
		payload.PaymentProvider = string(provider)
		payload.TransactionID = &selection.TransactionRef
		payload.FinalPrice = charged
		payload.ChargedAmount = charged
		return payload
	}

	payload.PaymentMethod = string(domain.PaymentCOD)
	payload.TransactionID = nil
	payload.FinalPrice = pending.BasePrice
	payload.ChargedAmount = pending.BasePrice
	return payload
}

// submit performs exactly one create-order call, guarding against re-entrant
// submission, and stores the payload so a retry can reissue it verbatim.
func (p *Pipeline) submit(ctx context.Context, payload domain.OrderPayload) (*Result, error) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	p.inFlight = true
	p.lastPayload = &payload
	p.retryCount = 0
	p.state = StateSubmitting
	p.mu.Unlock()

	defer p.clearInFlight()

	p.notifier.ShowLoading("Submitting your order...")
	result, err := p.api.CreateOrder(ctx, payload)
	p.notifier.HideLoading()

	if err != nil {
		return nil, p.fail(err, contextFormSubmission)
	}
	return p.succeed(result), nil
}

// Retry reissues the last stored payload without recollecting form state.
// Attempts are capped; beyond the cap no network call is made and a terminal
// message is shown. A new submission resets the counter.
func (p *Pipeline) Retry(ctx context.Context) (*Result, error) {
	p.mu.Lock()
	if p.lastPayload == nil || p.retryCount >= p.maxRetries {
		p.mu.Unlock()
		p.notifier.ShowMessage(ChannelError, "Retry Failed",
			"Maximum retry attempts reached. Please refresh the page and try again.")
		return nil, ErrRetryExhausted
	}
	if p.inFlight {
		p.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	p.retryCount++
	attempt := p.retryCount
	payload := *p.lastPayload
	p.inFlight = true
	p.state = StateSubmitting
	p.mu.Unlock()

	defer p.clearInFlight()

	p.notifier.ShowMessage(ChannelInfo, "Retrying...", fmt.Sprintf("Attempt %d of %d", attempt, p.maxRetries))

	result, err := p.api.CreateOrder(ctx, payload)
	if err != nil {
		return nil, p.fail(err, contextRetry)
	}
	return p.succeed(result), nil
}

// Reset discards the session's pending order and retry handle and restores
// the form's default state.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	p.pending = nil
	p.lastPayload = nil
	p.retryCount = 0
	p.state = StateEditing
	p.mu.Unlock()

	for _, field := range validate.Fields() {
		p.notifier.ClearField(field)
	}
	p.notifier.PriceChanged(p.prices.DefaultPrice())
}

func (p *Pipeline) clearInFlight() {
	p.mu.Lock()
	p.inFlight = false
	p.mu.Unlock()
}

func (p *Pipeline) succeed(result *api.OrderResult) *Result {
	orderID := result.OrderID
	fallback := false
	if orderID == "" {
		orderID = p.fallbackID()
		fallback = true
	}

	p.mu.Lock()
	p.pending = nil
	p.lastPayload = nil
	p.retryCount = 0
	p.state = StateSucceeded
	p.mu.Unlock()

	p.logger.Info("order submitted", zap.String("orderId", orderID), zap.Bool("fallbackId", fallback))
	p.notifier.ShowMessage(ChannelSuccess, "Order Placed Successfully!", "Order ID: "+orderID)

	for _, field := range validate.Fields() {
		p.notifier.ClearField(field)
	}
	p.notifier.PriceChanged(p.prices.DefaultPrice())

	return &Result{OrderID: orderID, Fallback: fallback}
}

// fail reports the classified error and keeps the form, pending order and
// retry handle intact so the user can retry or correct input.
func (p *Pipeline) fail(err error, fctx failureContext) error {
	p.mu.Lock()
	p.state = StateFailed
	p.mu.Unlock()

	p.logger.Warn("submission failed", zap.String("context", string(fctx)), zap.Error(err))
	notifyFailure(p.notifier, err, fctx)
	return err
}

// fallbackID derives a display-only id from the current time; it is never
// treated as authoritative.
func (p *Pipeline) fallbackID() string {
	ms := strconv.FormatInt(p.now().UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return p.fallbackPrefix + ms
}

// QueueJerseyNumberCheck debounces the advisory availability check; only the
// most recent keystroke's check fires per quiet period.
func (p *Pipeline) QueueJerseyNumberCheck(ctx context.Context, number, batch string) {
	p.debounce.Call("jerseyNumber", func() {
		p.CheckJerseyNumber(ctx, number, batch)
	})
}

// QueueNameCheck debounces the advisory name-exists check.
func (p *Pipeline) QueueNameCheck(ctx context.Context, name string) {
	p.debounce.Call("name", func() {
		p.CheckName(ctx, name)
	})
}

// CheckJerseyNumber asks the backend whether the number is still free. The
// result only decorates the field and never blocks submission; a transport
// failure is logged and otherwise ignored. Responses that were superseded by
// a later check are discarded.
func (p *Pipeline) CheckJerseyNumber(ctx context.Context, number, batch string) {
	if strings.TrimSpace(number) == "" {
		return
	}
	seq := p.nextSeq("jerseyNumber")

	result, err := p.api.CheckJerseyNumber(ctx, number, batch)
	if err != nil {
		p.logger.Warn("jersey number check failed", zap.Error(err))
		return
	}
	if !p.isLatest("jerseyNumber", seq) {
		p.logger.Debug("jersey number check superseded", zap.String("number", number))
		return
	}

	if !result.Available {
		p.notifier.FieldError("jerseyNumber",
			"This jersey number is already taken, but you can still use it without any problem.")
	} else {
		p.notifier.FieldSuccess("jerseyNumber")
	}
}

// CheckName is the advisory name-exists twin of CheckJerseyNumber.
func (p *Pipeline) CheckName(ctx context.Context, name string) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return
	}
	seq := p.nextSeq("name")

	result, err := p.api.CheckNameExists(ctx, trimmed)
	if err != nil {
		p.logger.Warn("name existence check failed", zap.Error(err))
		return
	}
	if !p.isLatest("name", seq) {
		p.logger.Debug("name check superseded", zap.String("name", trimmed))
		return
	}

	if result.Exists {
		p.notifier.FieldError("name",
			"This jersey name is already taken, but you can still use it without any problem.")
	} else {
		p.notifier.FieldSuccess("name")
	}
}

// Close stops any pending debounced checks.
func (p *Pipeline) Close() {
	p.debounce.Stop()
}

func (p *Pipeline) nextSeq(field string) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.checkSeq[field]++
	return p.checkSeq[field]
}

func (p *Pipeline) isLatest(field string, seq uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.checkSeq[field] == seq
}
