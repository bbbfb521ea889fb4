package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// ReconcileResult is what the result page renders: the status mapped from
// the provider's live session, plus the local order when one was linked.
// Status is served from the provider regardless of whether the local
// mirror write succeeded.
type ReconcileResult struct {
	Status entities.OrderStatus
	Order  entities.Order
}

// IReconcileUseCase aligns the local order record with the external payment
// session after the caller returns from the hosted payment page.

type IReconcileUseCase interface {
	Reconcile(ctx context.Context, profileID, sessionID string) (ReconcileResult, error)
}

type ReconcileUseCase struct {
	orderRepo interfaces.IOrderRepository
	cartRepo  interfaces.ICartRepository
	gateway   interfaces.ICheckoutGateway
	events    interfaces.IOrderEventPublisher
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	orderRepo interfaces.IOrderRepository,
	cartRepo interfaces.ICartRepository,
	gateway interfaces.ICheckoutGateway,
	events interfaces.IOrderEventPublisher,
) *ReconcileUseCase {
	return &ReconcileUseCase{orderRepo: orderRepo, cartRepo: cartRepo, gateway: gateway, events: events}
}

// MapPaymentStatus maps the provider's raw payment status onto the local
// order status. A successful payment maps to paid; any other terminal
// status maps to canceled; in-flight statuses stay processing.
func MapPaymentStatus(provider string) entities.OrderStatus {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "succeeded", "approved":
		return entities.OrderStatusPaid
	case "pending", "in_process", "in_mediation", "authorized":
		return entities.OrderStatusProcessing
	default:
		return entities.OrderStatusCanceled
	}
}

func (u *ReconcileUseCase) Reconcile(ctx context.Context, profileID, sessionID string) (ReconcileResult, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" || profileID == entities.GuestIdentity {
		return ReconcileResult{}, ErrUnauthorized
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ReconcileResult{}, ErrInvalidSessionID
	}

	outcome, err := u.gateway.GetSessionOutcome(ctx, sessionID)
	if err != nil {
		log.Printf("[reconcile][usecase] session fetch failed session_id=%s err=%v", sessionID, err)
		return ReconcileResult{}, err
	}

	status := MapPaymentStatus(outcome.Status)
	res := ReconcileResult{Status: status}
	log.Printf("[reconcile][usecase] session resolved session_id=%s provider_status=%s status=%s order_id=%s",
		sessionID, outcome.Status, status, outcome.OrderID)

	// Mirror writes below are best effort: the page renders from the
	// provider's live status even when persistence fails.
	if outcome.OrderID != "" && status != entities.OrderStatusProcessing {
		updated, err := u.orderRepo.UpdateStatus(ctx, outcome.OrderID, status, outcome.PaymentMethod)
		if err != nil {
			log.Printf("[reconcile][usecase] order update failed order_id=%s err=%v", outcome.OrderID, err)
		} else if updated.ID == "" {
			log.Printf("[reconcile][usecase] order not found order_id=%s", outcome.OrderID)
		} else {
			res.Order = updated
			if u.events != nil {
				if err := u.events.PublishOrderStatusChanged(ctx, updated); err != nil {
					log.Printf("[reconcile][usecase] event publish failed order_id=%s err=%v", updated.ID, err)
				}
			}
		}
	}

	if status == entities.OrderStatusPaid {
		if err := u.cartRepo.Delete(ctx, entities.CartNamespace(profileID)); err != nil {
			log.Printf("[reconcile][usecase] cart clear failed profile_id=%s err=%v", profileID, err)
		}
	}

	return res, nil
}
