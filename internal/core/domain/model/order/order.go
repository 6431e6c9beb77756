package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	noteCreated          = "Order created"
	notePaymentReceived  = "Payment received"
	noteDelivered        = "Work delivered"
	noteAccepted         = "Delivery accepted"
	noteRevision         = "Revision requested"
	noteCancelled        = "Order cancelled"
	noteDisputed         = "Dispute opened"
	noteCompleted        = "Order completed"
	noteFundsReleased    = "Funds released after acceptance"
	resourceOrder        = "order"
	reasonNotSeller      = "only the seller of the order may do this"
	reasonNotBuyer       = "only the buyer of the order may do this"
	reasonNotParty       = "actor is not a party to the order"
	reasonAdminRequired  = "admin role required"
	reasonRoleNotAllowed = "role cannot perform this operation"
)

// Order is a commissioned work order between a buyer and a seller. It is the
// aggregate root of the lifecycle and the only place status changes happen.
//
// Order follows these invariants:
//   - id, buyer, seller, package snapshot and pricing never change after creation
//   - status history has at least one entry and is only ever appended to
//   - each state timestamp is set once, the first time its state is entered
//   - isPaid only moves from false to true
//   - the revision counter only increases
//   - completionDueAt is set only while the order is accepted
//
// Every mutating method either fails without touching the order or applies the
// whole change. A request for the status the order is already in succeeds
// without recording anything.
type Order struct {
	id       kernel.UUID
	buyerID  kernel.UUID
	sellerID kernel.UUID

	pkg          Package
	pricing      Pricing
	requirements string

	status   Status
	history  []HistoryEntry
	timeline Timeline

	isPaid       bool
	paymentError string

	delivery           *Delivery
	revisionRequest    *RevisionRequest
	revisionCount      int
	acceptanceFeedback string
	cancellationReason string
	disputeReason      string

	// completionDueAt is when the deferred completion may run; nil unless accepted.
	completionDueAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	// version is the persisted version the order was loaded at.
	version int64
	dirty   bool

	isConstructed bool
}

// NewOrder creates an order in the pending state on behalf of its buyer.
//
// Parameters:
//   - id: identifier of the new order
//   - buyerID, sellerID: the two parties; they must differ
//   - pkg: snapshot of the package being bought
//   - pricing: monetary fields computed by a FeePolicy for pkg
//   - requirements: optional brief from the buyer
//   - now: creation instant, also the time of the first history entry
//
// Example:
//
//	pkg, _ := order.NewPackage("Basic", 3, 1, kernel.MustMoney(5000))
//	pricing, _ := policy.Price(pkg)
//	o, err := order.NewOrder(kernel.NewUUID(), buyerID, sellerID, pkg, pricing, "", clock.Now())
func NewOrder(
	id, buyerID, sellerID kernel.UUID,
	pkg Package,
	pricing Pricing,
	requirements string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		requirements:  strings.TrimSpace(requirements),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(buyerID, sellerID),
		o.setTerms(pkg, pricing),
	); err != nil {
		return nil, err
	}

	o.history = []HistoryEntry{{
		Status:  Pending,
		At:      now,
		ActorID: buyerID,
		Role:    RoleBuyer,
		Note:    noteCreated,
	}}
	o.dirty = true
	return o, nil
}

// Validate ensures the Order instance was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) BuyerID() kernel.UUID { return o.buyerID }
func (o *Order) SellerID() kernel.UUID { return o.sellerID }
func (o *Order) Package() Package { return o.pkg }
func (o *Order) Pricing() Pricing { return o.pricing }
func (o *Order) Requirements() string { return o.requirements }
func (o *Order) Status() Status { return o.status }
func (o *Order) IsPaid() bool { return o.isPaid }
func (o *Order) PaymentError() string { return o.paymentError }
func (o *Order) RevisionCount() int { return o.revisionCount }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// AcceptanceFeedback is the buyer's comment given on acceptance.
func (o *Order) AcceptanceFeedback() string { return o.acceptanceFeedback }
func (o *Order) CancellationReason() string { return o.cancellationReason }
func (o *Order) DisputeReason() string { return o.disputeReason }

// History returns a copy of the status history, oldest first.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// Timeline returns a copy of the per-state timestamps.
func (o *Order) Timeline() Timeline {
	return o.timeline.clone()
}

// Delivery returns the latest delivery, or nil if the seller has not delivered yet.
func (o *Order) Delivery() *Delivery {
	if o.delivery == nil {
		return nil
	}
	d := o.delivery.clone()
	return &d
}

// RevisionRequest returns the latest revision request, or nil.
func (o *Order) RevisionRequest() *RevisionRequest {
	if o.revisionRequest == nil {
		return nil
	}
	r := *o.revisionRequest
	return &r
}

// RevisionsRemaining is the package allowance minus the revisions used, floored at 0.
// It is informational; requests beyond the allowance are not rejected.
func (o *Order) RevisionsRemaining() int {
	return max(o.pkg.Revisions()-o.revisionCount, 0)
}

// CompletionDueAt returns when the deferred completion becomes due, or nil if none is pending.
func (o *Order) CompletionDueAt() *time.Time {
	return cloneTime(o.completionDueAt)
}

// Version is the persisted version this order was created or loaded at.
func (o *Order) Version() int64 {
	return o.version
}

// HasChanges reports whether the order was mutated since it was created,
// loaded or last persisted.
func (o *Order) HasChanges() bool {
	return o.dirty
}

// AdvanceVersion is called by the unit of work once a write of the order has
// been committed.
func (o *Order) AdvanceVersion() {
	o.version++
	o.dirty = false
}

// IsParty reports whether userID is the buyer or the seller of the order.
func (o *Order) IsParty(userID kernel.UUID) bool {
	return o.buyerID.IsEqual(userID) || o.sellerID.IsEqual(userID)
}

// MarkPaid consumes the payment collaborator's "payment completed" signal and
// moves a pending order to in_progress as the system actor.
//
// The amount must equal the total charged. The payment error, if any, is cleared.
//
// Returns:
//   - nil on success, or when the order is already in progress
//   - a ValueIsInvalidError when the amount does not match
//   - an InvalidTransitionError from any status other than pending
func (o *Order) MarkPaid(amount kernel.Money, now time.Time) error {
	if !amount.IsEqual(o.pricing.TotalCharged()) {
		return errs.NewValueIsInvalidErrorWithCause("payment amount",
			fmt.Errorf("%s does not match total charged %s", amount, o.pricing.TotalCharged()))
	}

	changed, err := o.transition(InProgress, SystemActor(), notePaymentReceived, now)
	if err != nil || !changed {
		return err
	}

	o.isPaid = true
	o.paymentError = ""
	return nil
}

// RecordPaymentFailure stores the reason a payment attempt failed. It does not
// change the status and never touches isPaid.
func (o *Order) RecordPaymentFailure(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("payment failure reason")
	}
	if o.isPaid {
		return errs.NewValueIsInvalidErrorWithCause("payment failure", errors.New("order is already paid"))
	}
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("payment failure", fmt.Errorf("order is %s", o.status))
	}

	o.paymentError = reason
	o.touch(now)
	return nil
}

// Deliver attaches the seller's work and moves the order to delivered.
//
// Only the order's seller may deliver; any other caller gets an UnauthorizedError
// whatever the current status. A message or at least one file is required.
//
// Example:
//
//	err := o.Deliver(sellerActor, "first cut", []string{"s3://bucket/cut-1.mp4"}, now)
func (o *Order) Deliver(actor Actor, message string, files []string, now time.Time) error {
	if !o.sellerID.IsEqual(actor.ID()) {
		return errs.NewUnauthorizedError(actor.ID().String(), o.resource(), reasonNotSeller)
	}

	delivery, err := NewDelivery(message, files, now)
	if err != nil {
		return err
	}

	changed, err := o.transition(Delivered, actor.as(RoleSeller), noteDelivered, now)
	if err != nil || !changed {
		return err
	}

	o.delivery = &delivery
	return nil
}

// AcceptDelivery lets the buyer accept the current delivery. The order becomes
// accepted and its completion falls due completionDelay after now; see
// CompleteAfterAcceptance.
func (o *Order) AcceptDelivery(actor Actor, feedback string, now time.Time, completionDelay time.Duration) error {
	if !o.buyerID.IsEqual(actor.ID()) {
		return errs.NewUnauthorizedError(actor.ID().String(), o.resource(), reasonNotBuyer)
	}
	if completionDelay < 0 {
		return errs.NewValueIsInvalidErrorWithCause("completion delay", fmt.Errorf("%s is negative", completionDelay))
	}

	feedback = strings.TrimSpace(feedback)
	changed, err := o.transition(Accepted, actor.as(RoleBuyer), noteOr(feedback, noteAccepted), now)
	if err != nil || !changed {
		return err
	}

	o.acceptanceFeedback = feedback
	due := now.Add(completionDelay)
	o.completionDueAt = &due
	return nil
}

// RequestRevision lets the buyer send the delivery back with instructions.
// Each successful request increments the revision counter.
func (o *Order) RequestRevision(actor Actor, instructions string, now time.Time) error {
	if !o.buyerID.IsEqual(actor.ID()) {
		return errs.NewUnauthorizedError(actor.ID().String(), o.resource(), reasonNotBuyer)
	}

	request, err := NewRevisionRequest(instructions, now)
	if err != nil {
		return err
	}

	changed, err := o.transition(RevisionRequested, actor.as(RoleBuyer), noteRevision, now)
	if err != nil || !changed {
		return err
	}

	o.revisionCount++
	o.revisionRequest = &request
	return nil
}

// Cancel moves the order to cancelled. The caller must be the buyer or the
// seller of the order, or an admin. The reason is optional.
func (o *Order) Cancel(actor Actor, reason string, now time.Time) error {
	actor, err := o.partyActor(actor)
	if err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	changed, err := o.transition(Cancelled, actor, noteOr(reason, noteCancelled), now)
	if err != nil || !changed {
		return err
	}

	if reason != "" {
		o.cancellationReason = reason
	}
	return nil
}

// OpenDispute escalates the order. Authorization follows Cancel.
func (o *Order) OpenDispute(actor Actor, reason string, now time.Time) error {
	actor, err := o.partyActor(actor)
	if err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	changed, err := o.transition(Disputed, actor, noteOr(reason, noteDisputed), now)
	if err != nil || !changed {
		return err
	}

	if reason != "" {
		o.disputeReason = reason
	}
	return nil
}

// Complete lets an admin complete an accepted order early or resolve a dispute
// in the seller's favour.
func (o *Order) Complete(actor Actor, note string, now time.Time) error {
	if actor.Role() != RoleAdmin {
		return errs.NewUnauthorizedError(actor.ID().String(), o.resource(), reasonAdminRequired)
	}

	_, err := o.transition(Completed, actor, noteOr(strings.TrimSpace(note), noteCompleted), now)
	return err
}

// CompleteAfterAcceptance applies the deferred completion as the system actor.
//
// Returns:
//   - ErrCompletionNotPending if the order is no longer accepted; the completion
//     was cancelled by the order leaving that state
//   - ErrCompletionNotDue if now is before CompletionDueAt
func (o *Order) CompleteAfterAcceptance(now time.Time) error {
	if o.status != Accepted || o.completionDueAt == nil {
		return ErrCompletionNotPending
	}
	if now.Before(*o.completionDueAt) {
		return ErrCompletionNotDue
	}

	_, err := o.transition(Completed, SystemActor(), noteFundsReleased, now)
	return err
}

// transition is the single mutation path for status. It reports whether the
// order changed; a request for the current status changes nothing.
func (o *Order) transition(to Status, actor Actor, note string, now time.Time) (bool, error) {
	if o.status == to {
		return false, nil
	}
	if !IsValidTransition(o.status, to, actor.Role()) {
		return false, NewInvalidTransitionError(o.status, to, actor.Role())
	}

	o.status = to
	o.history = append(o.history, HistoryEntry{
		Status:  to,
		At:      now,
		ActorID: actor.ID(),
		Role:    actor.Role(),
		Note:    note,
	})
	o.timeline.stamp(to, now)
	if to != Accepted {
		o.completionDueAt = nil
	}
	o.touch(now)
	return true, nil
}

// partyActor resolves the role actor acts in on this order: admins keep theirs,
// buyer and seller are recognised by identity whatever role they declare.
func (o *Order) partyActor(actor Actor) (Actor, error) {
	switch {
	case actor.Role() == RoleAdmin:
		return actor, nil
	case actor.Role() == RoleSystem:
		return Actor{}, errs.NewUnauthorizedError(actor.ID().String(), o.resource(), reasonRoleNotAllowed)
	case o.buyerID.IsEqual(actor.ID()):
		return actor.as(RoleBuyer), nil
	case o.sellerID.IsEqual(actor.ID()):
		return actor.as(RoleSeller), nil
	default:
		return Actor{}, errs.NewUnauthorizedError(actor.ID().String(), o.resource(), reasonNotParty)
	}
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
	o.dirty = true
}

func (o *Order) resource() string {
	return resourceOrder + " " + o.id.String()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(buyerID, sellerID kernel.UUID) error {
	if err := errors.Join(buyerID.Validate(), sellerID.Validate()); err != nil {
		return err
	}
	if buyerID.IsEqual(sellerID) {
		return errs.NewValueIsInvalidErrorWithCause("seller", errors.New("buyer and seller must differ"))
	}
	o.buyerID = buyerID
	o.sellerID = sellerID
	return nil
}

func (o *Order) setTerms(pkg Package, pricing Pricing) error {
	if pkg.Name() == "" {
		return errs.NewValueIsRequiredError("package")
	}
	if !pricing.Base().IsEqual(pkg.Price()) {
		return errs.NewValueIsInvalidErrorWithCause("pricing",
			fmt.Errorf("base %s does not match package price %s", pricing.Base(), pkg.Price()))
	}
	o.pkg = pkg
	o.pricing = pricing
	return nil
}

func noteOr(note, fallback string) string {
	if note != "" {
		return note
	}
	return fallback
}
