package falo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/faloiraq/falo/internal/adapters/store/model"
)

// Admin operations behind the ADMIN role: user moderation, point
// adjustments, gift-code lifecycle and order fulfilment.

func (f *Falo) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := f.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting users: %w", err)
	}
	return users, nil
}

func (f *Falo) SetUserStatus(ctx context.Context, userID uint, status model.UserStatus) error {
	switch status {
	case model.UserStatusActive, model.UserStatusBanned, model.UserStatusCompromised:
	default:
		return ErrStatusNotAllowed
	}
	if err := f.store.SetUserStatus(ctx, userID, status); err != nil {
		return fmt.Errorf("failed set user status: %w", err)
	}
	return nil
}

// SetUserPoints adjusts a balance by username or email, relatively or
// absolutely. The resulting balance is clamped at zero either way.
func (f *Falo) SetUserPoints(ctx context.Context, login string, amount int64, relative bool) (model.User, error) {
	user, err := f.store.GetUserByLogin(ctx, strings.ToLower(strings.TrimSpace(login)))
	if err != nil {
		return user, fmt.Errorf("failed getting user `%s`: %w", login, err)
	}

	if relative {
		user, err = f.store.AdjustPoints(ctx, user.ID, amount)
	} else {
		user, err = f.store.SetPoints(ctx, user.ID, amount)
	}
	if err != nil {
		return user, fmt.Errorf("failed set user points: %w", err)
	}

	f.notify(ctx, user.ID, model.NotificationAnnouncement, "Admin credit adjustment",
		fmt.Sprintf("Balance adjusted by %d points.", amount))

	return user, nil
}

func (f *Falo) CreateGiftCode(ctx context.Context, code string, reward int64, expiresAt time.Time) (model.GiftCode, error) {
	var gift model.GiftCode
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || reward <= 0 || expiresAt.IsZero() {
		return gift, ErrAmountNotValid
	}

	gift, err := f.store.CreateGiftCode(ctx, model.GiftCode{
		Code:      code,
		Reward:    reward,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return gift, fmt.Errorf("failed create gift code: %w", err)
	}
	return gift, nil
}

func (f *Falo) DeleteGiftCode(ctx context.Context, giftID uint) error {
	if err := f.store.DeleteGiftCode(ctx, giftID); err != nil {
		return fmt.Errorf("failed delete gift code: %w", err)
	}
	return nil
}

func (f *Falo) ListGiftCodes(ctx context.Context) ([]*model.GiftCode, error) {
	gifts, err := f.store.ListGiftCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting gift codes: %w", err)
	}
	return gifts, nil
}

func (f *Falo) ListOrders(ctx context.Context) ([]*model.Order, error) {
	orders, err := f.store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus walks the order forward along
// PENDING -> PROCESSING -> {COMPLETED, REJECTED}; anything else is
// rejected.
func (f *Falo) UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus) error {
	order, err := f.store.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed getting order: %w", err)
	}

	if !transitionAllowed(order.Status, status) {
		return ErrStatusNotAllowed
	}

	if err := f.store.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("failed update order status: %w", err)
	}
	return nil
}

func transitionAllowed(from, to model.OrderStatus) bool {
	switch from {
	case model.OrderStatePending:
		return to == model.OrderStateProcessing
	case model.OrderStateProcessing:
		return to == model.OrderStateCompleted || to == model.OrderStateRejected
	}
	return false
}
