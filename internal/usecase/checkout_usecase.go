package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoFreightSelected = errors.New("no freight option selected")
)

// CheckoutInput is the aggregation the storefront submits: the caller's
// address, the carrier selected from a quote, and the fingerprint of the
// address that quote was computed for.
type CheckoutInput struct {
	ProfileID        string
	Address          entities.Address
	Carrier          string
	QuoteFingerprint string
}

// CheckoutResult carries the created order and the hosted payment page to
// redirect the caller to.
type CheckoutResult struct {
	Order      entities.Order
	SessionID  string
	PaymentURL string
}

// ICheckoutUseCase assembles cart + shipping + address into one order
// submission and hands off to the external payment session.
//
// The remote writes are sequential with no compensation: a failure after
// the order insert leaves the committed rows in place and surfaces the
// error. This mirrors the storefront's known gap.

type ICheckoutUseCase interface {
	Checkout(ctx context.Context, input CheckoutInput) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	cartRepo    interfaces.ICartRepository
	orderRepo   interfaces.IOrderRepository
	profileRepo interfaces.IProfileRepository
	gateway     interfaces.ICheckoutGateway
	freight     IFreightUseCase
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	cartRepo interfaces.ICartRepository,
	orderRepo interfaces.IOrderRepository,
	profileRepo interfaces.IProfileRepository,
	gateway interfaces.ICheckoutGateway,
	freight IFreightUseCase,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		gateway:     gateway,
		freight:     freight,
	}
}

func (u *CheckoutUseCase) Checkout(ctx context.Context, input CheckoutInput) (CheckoutResult, error) {
	profileID := strings.TrimSpace(input.ProfileID)
	if profileID == "" || profileID == entities.GuestIdentity {
		return CheckoutResult{}, ErrUnauthenticated
	}
	if errs := input.Address.Validate(); len(errs) > 0 {
		return CheckoutResult{}, ErrInvalidAddress
	}
	if strings.TrimSpace(input.Carrier) == "" {
		return CheckoutResult{}, ErrNoFreightSelected
	}

	// SelectOption re-checks the fingerprint, so an address edited after
	// the quote was obtained is rejected here before anything is written.
	option, err := u.freight.SelectOption(input.Address, input.QuoteFingerprint, input.Carrier)
	if err != nil {
		return CheckoutResult{}, err
	}

	ns := entities.CartNamespace(profileID)
	cart, err := u.cartRepo.Get(ctx, ns)
	if err != nil {
		return CheckoutResult{}, err
	}
	if cart.IsEmpty() {
		return CheckoutResult{}, ErrEmptyCart
	}

	log.Printf("[checkout][usecase] start profile_id=%s items=%d carrier=%s", profileID, len(cart.Items), option.Carrier)

	addr := input.Address
	addr.PostalCode = normalizePostalCode(addr.PostalCode)
	if _, err := u.profileRepo.UpsertAddress(ctx, profileID, addr); err != nil {
		log.Printf("[checkout][usecase] address save failed profile_id=%s err=%v", profileID, err)
		return CheckoutResult{}, err
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:               uuid.NewString(),
		ProfileID:        profileID,
		Total:            cart.Total() + option.Price,
		ShippingPrice:    option.Price,
		ShippingProvider: option.Carrier,
		Status:           entities.OrderStatusProcessing,
		PostalCode:       addr.PostalCode,
		Street:           addr.Street,
		Number:           addr.Number,
		Neighborhood:     addr.Neighborhood,
		City:             addr.City,
		Region:           addr.Region,
		Complement:       addr.Complement,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, it := range cart.Items {
		order.Items = append(order.Items, entities.OrderItem{
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	created, err := u.orderRepo.Create(ctx, order)
	if err != nil {
		log.Printf("[checkout][usecase] order insert failed profile_id=%s err=%v", profileID, err)
		return CheckoutResult{}, err
	}

	session := entities.CheckoutSession{OrderID: created.ID}
	for _, it := range cart.Items {
		session.Lines = append(session.Lines, entities.CheckoutSessionLine{
			Description: it.Name,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
		})
	}
	session.Lines = append(session.Lines, entities.CheckoutSessionLine{
		Description: fmt.Sprintf("Shipping (%s)", option.Carrier),
		UnitPrice:   option.Price,
		Quantity:    1,
	})

	// No compensating rollback: the order row stays "processing" if the
	// session cannot be created.
	result, err := u.gateway.CreateSession(ctx, session)
	if err != nil {
		log.Printf("[checkout][usecase] session create failed order_id=%s err=%v", created.ID, err)
		return CheckoutResult{}, err
	}

	log.Printf("[checkout][usecase] success order_id=%s session_id=%s total=%d", created.ID, result.SessionID, created.Total)
	return CheckoutResult{Order: created, SessionID: result.SessionID, PaymentURL: result.PaymentURL}, nil
}
