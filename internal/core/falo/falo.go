package falo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/faloiraq/falo/internal/adapters/store/errstore"
	"github.com/faloiraq/falo/internal/adapters/store/model"
	"go.uber.org/zap"
)

// transferFee is burned on every non-admin transfer, it is not
// credited to the recipient.
const transferFee int64 = 50

type Store interface {
	RegisterUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByLogin(ctx context.Context, login string) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetUserByID(ctx context.Context, id uint) (model.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	SetUserStatus(ctx context.Context, userID uint, status model.UserStatus) error
	IncrementReferralCount(ctx context.Context, userID uint) error
	AdjustPoints(ctx context.Context, userID uint, delta int64) (model.User, error)
	SetPoints(ctx context.Context, userID uint, points int64) (model.User, error)
	CompleteTask(ctx context.Context, userID, taskID uint, reward int64) (model.User, error)
	TransferPoints(ctx context.Context, senderID, recipientID uint, debit, credit int64) error
	RedeemGiftCode(ctx context.Context, userID, giftID uint, reward int64) (model.User, error)
	GetGiftCode(ctx context.Context, code string) (model.GiftCode, error)
	HasUsedGiftCode(ctx context.Context, userID, giftID uint) (bool, error)
	CreateGiftCode(ctx context.Context, gift model.GiftCode) (model.GiftCode, error)
	DeleteGiftCode(ctx context.Context, giftID uint) error
	ListGiftCodes(ctx context.Context) ([]*model.GiftCode, error)
	ListServices(ctx context.Context) ([]*model.Service, error)
	GetService(ctx context.Context, serviceID uint) (model.Service, error)
	ListTasks(ctx context.Context) ([]*model.Task, error)
	GetTask(ctx context.Context, taskID uint) (model.Task, error)
	ListCompletedTasks(ctx context.Context, userID uint) ([]uint, error)
	PlaceOrder(ctx context.Context, order *model.Order, debit int64) error
	GetUserOrders(ctx context.Context, userID uint) ([]*model.Order, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)
	GetOrder(ctx context.Context, orderID uint) (model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus) error
	CreateNotification(ctx context.Context, notif model.Notification) error
	GetUserNotifications(ctx context.Context, userID uint) ([]*model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notifID uint) error
	ClearNotifications(ctx context.Context, userID uint) error
}

type Config struct {
	SupportContact string `env:"SUPPORT_CONTACT" envDefault:"+9647700000000"`
}

type Falo struct {
	log   *zap.Logger
	cfg   *Config
	store Store
	guard *abuseGuard
	now   func() time.Time
}

type option func(*Falo)

func Logger(log *zap.Logger) option {
	return func(f *Falo) {
		if log != nil {
			f.log = log
		}
	}
}

func Clock(now func() time.Time) option {
	return func(f *Falo) {
		f.now = now
	}
}

func New(cfg *Config, store Store, options ...option) *Falo {
	f := &Falo{
		log:   zap.NewNop(),
		cfg:   cfg,
		store: store,
		guard: newAbuseGuard(),
		now:   time.Now,
	}

	for _, opt := range options {
		opt(f)
	}

	return f
}

type RegistrationInput struct {
	Name         string
	Username     string
	Email        string
	Password     string
	ReferralCode string
}

func (f *Falo) Register(ctx context.Context, input RegistrationInput) (model.User, error) {
	var user model.User
	if err := validateLogin(input.Username); err != nil {
		return user, fmt.Errorf("login invalidate: %w", err)
	}
	if err := validatePassword(input.Password); err != nil {
		return user, fmt.Errorf("password invalidate: %w", err)
	}
	if err := validateEmail(input.Email); err != nil {
		return user, fmt.Errorf("email invalidate: %w", err)
	}

	hashPass, err := HashPassword(input.Password)
	if err != nil {
		return user, fmt.Errorf("failed hash password: %w", err)
	}

	name := input.Name
	if name == "" {
		name = input.Username
	}

	user, err = f.store.RegisterUser(ctx, model.User{
		Name:         name,
		Username:     strings.ToLower(strings.TrimSpace(input.Username)),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hashPass,
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
		ReferralCode: newReferralCode(),
		ReferredBy:   strings.ToUpper(strings.TrimSpace(input.ReferralCode)),
	})
	if err != nil {
		return user, fmt.Errorf("failed register user: %w", err)
	}

	if user.ReferredBy != "" {
		referrer, err := f.store.GetUserByReferralCode(ctx, user.ReferredBy)
		if err == nil && referrer.ID != user.ID {
			if err := f.store.IncrementReferralCount(ctx, referrer.ID); err != nil {
				f.log.Error("failed increment referral count", zap.Uint("userID", referrer.ID), zap.Error(err))
			}
		}
	}

	return user, nil
}

// Authorization checks the credential pair and rejects banned and
// compromised accounts before any ledger operation can be reached.
func (f *Falo) Authorization(ctx context.Context, login, password string) (model.User, error) {
	var user model.User
	var err error
	if err := validateLogin(login); err != nil {
		return user, fmt.Errorf("login invalidate: %w", err)
	}
	if err := validatePassword(password); err != nil {
		return user, fmt.Errorf("password invalidate: %w", err)
	}

	user, err = f.store.GetUserByLogin(ctx, strings.ToLower(strings.TrimSpace(login)))
	if err != nil {
		return user, fmt.Errorf("failed getting user `%s`: %w", login, err)
	}

	if ok := checkPasswordHash(password, user.PasswordHash); !ok {
		return user, ErrPasswordNotEquale
	}

	switch user.Status {
	case model.UserStatusBanned:
		return user, ErrUserBanned
	case model.UserStatusCompromised:
		return user, ErrUserCompromised
	}

	return user, nil
}

func (f *Falo) Profile(ctx context.Context, userID uint) (model.User, error) {
	user, err := f.store.GetUserByID(ctx, userID)
	if err != nil {
		return user, fmt.Errorf("failed getting user: %w", err)
	}
	if user.Status == model.UserStatusBanned {
		return user, ErrUserBanned
	}
	if user.Status == model.UserStatusCompromised {
		return user, ErrUserCompromised
	}
	return user, nil
}

func (f *Falo) Services(ctx context.Context) ([]*model.Service, error) {
	services, err := f.store.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting services: %w", err)
	}
	return services, nil
}

func (f *Falo) Tasks(ctx context.Context, userID uint) ([]*model.Task, map[uint]bool, error) {
	tasks, err := f.store.ListTasks(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed getting tasks: %w", err)
	}
	completedIDs, err := f.store.ListCompletedTasks(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed getting completed tasks: %w", err)
	}
	completed := make(map[uint]bool, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = true
	}
	return tasks, completed, nil
}

// CompleteTask credits the task reward once. The duplicate check lives
// in the store mutation itself, a repeated call fails with
// ErrTaskCompleted instead of paying twice.
func (f *Falo) CompleteTask(ctx context.Context, userID, taskID uint) (model.User, error) {
	var user model.User
	if f.guard.hit(userID, f.now()) {
		if err := f.store.SetUserStatus(ctx, userID, model.UserStatusCompromised); err != nil {
			f.log.Error("failed lock abusive account", zap.Uint("userID", userID), zap.Error(err))
		}
		f.log.Warn("task verification abuse, account locked", zap.Uint("userID", userID))
		return user, ErrUserCompromised
	}

	task, err := f.store.GetTask(ctx, taskID)
	if err != nil {
		return user, fmt.Errorf("failed getting task: %w", err)
	}

	user, err = f.store.CompleteTask(ctx, userID, task.ID, task.Reward)
	if err != nil {
		if errors.Is(err, errstore.ErrTaskAlreadyCompleted) {
			return user, ErrTaskCompleted
		}
		return user, fmt.Errorf("failed complete task: %w", err)
	}

	return user, nil
}

// Transfer moves points between two distinct accounts. Checks run in a
// fixed order and the first failure wins: fee model, sender balance,
// recipient lookup, self-transfer. The fee is burned.
func (f *Falo) Transfer(ctx context.Context, senderID uint, targetUsername string, amount int64) (model.User, error) {
	var updated model.User
	if amount <= 0 {
		return updated, ErrAmountNotValid
	}

	sender, err := f.store.GetUserByID(ctx, senderID)
	if err != nil {
		return updated, fmt.Errorf("failed getting sender: %w", err)
	}

	totalDeduction := amount + transferFee
	if sender.Role == model.RoleAdmin {
		totalDeduction = 0
	}

	if sender.Points < totalDeduction {
		return updated, ErrInsufficientBalance
	}

	recipient, err := f.store.GetUserByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return updated, ErrRecipientNotFound
		}
		return updated, fmt.Errorf("failed getting recipient: %w", err)
	}

	if recipient.ID == sender.ID {
		return updated, ErrSelfTransfer
	}

	if err := f.store.TransferPoints(ctx, sender.ID, recipient.ID, totalDeduction, amount); err != nil {
		if errors.Is(err, errstore.ErrBalanceNotEnough) {
			return updated, ErrInsufficientBalance
		}
		return updated, fmt.Errorf("failed transfer points: %w", err)
	}

	f.notify(ctx, sender.ID, model.NotificationTransfer, "Transfer successful",
		fmt.Sprintf("Transferred %d points to @%s", amount, recipient.Username))

	updated, err = f.store.GetUserByID(ctx, sender.ID)
	if err != nil {
		return updated, fmt.Errorf("failed getting sender after transfer: %w", err)
	}
	return updated, nil
}

// RedeemGift validates a gift code and credits its reward. A code is
// single-use per user but stays open to other users until it expires.
func (f *Falo) RedeemGift(ctx context.Context, userID uint, code string) (model.GiftCode, model.User, error) {
	var user model.User
	gift, err := f.store.GetGiftCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return gift, user, ErrCodeNotFound
		}
		return gift, user, fmt.Errorf("failed getting gift code: %w", err)
	}

	if gift.ExpiresAt.Before(f.now()) {
		return gift, user, ErrCodeExpired
	}

	used, err := f.store.HasUsedGiftCode(ctx, userID, gift.ID)
	if err != nil {
		return gift, user, fmt.Errorf("failed checking gift code usage: %w", err)
	}
	if used {
		return gift, user, ErrCodeAlreadyUsed
	}

	user, err = f.store.RedeemGiftCode(ctx, userID, gift.ID, gift.Reward)
	if err != nil {
		if errors.Is(err, errstore.ErrGiftCodeAlreadyUsed) {
			return gift, user, ErrCodeAlreadyUsed
		}
		return gift, user, fmt.Errorf("failed redeem gift code: %w", err)
	}

	f.notify(ctx, userID, model.NotificationGift, "Gift code redeemed",
		fmt.Sprintf("Received %d free points!", gift.Reward))

	return gift, user, nil
}

// PlaceOrder debits totalCost and records the order in one unit. Free
// services (price per unit 0) are always placeable and never debit;
// admins are exempt from the affordability check and the debit.
func (f *Falo) PlaceOrder(ctx context.Context, userID, serviceID uint, targetUsername string, amount int64) (model.Order, error) {
	var order model.Order
	service, err := f.store.GetService(ctx, serviceID)
	if err != nil {
		return order, fmt.Errorf("failed getting service: %w", err)
	}

	user, err := f.store.GetUserByID(ctx, userID)
	if err != nil {
		return order, fmt.Errorf("failed getting user: %w", err)
	}

	free := service.PricePerUnit == 0
	if !free {
		if amount <= 0 {
			return order, ErrAmountNotValid
		}
		if amount < service.MinAmount {
			return order, ErrAmountBelowMinimum
		}
	}

	totalCost := int64(math.Ceil(float64(amount) * service.PricePerUnit))

	affordable := user.Role == model.RoleAdmin || (user.Points >= totalCost && totalCost > 0) || free
	if !affordable {
		return order, ErrServiceUnaffordable
	}

	debit := totalCost
	if user.Role == model.RoleAdmin || free {
		debit = 0
	}

	order = model.Order{
		UserID:         user.ID,
		ServiceID:      service.ID,
		ServiceName:    service.Name,
		TargetUsername: targetUsername,
		Amount:         amount,
		TotalCost:      totalCost,
		Status:         model.OrderStateProcessing,
	}

	if err := f.store.PlaceOrder(ctx, &order, debit); err != nil {
		if errors.Is(err, errstore.ErrBalanceNotEnough) {
			return order, ErrServiceUnaffordable
		}
		return order, fmt.Errorf("failed place order: %w", err)
	}

	f.notify(ctx, user.ID, model.NotificationOrder, "New order processing",
		fmt.Sprintf("Order for %s received.", service.Name))

	return order, nil
}

func (f *Falo) GetUserOrders(ctx context.Context, userID uint) ([]*model.Order, error) {
	orders, err := f.store.GetUserOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting orders by user: %w", err)
	}
	return orders, nil
}

func (f *Falo) Notifications(ctx context.Context, userID uint) ([]*model.Notification, error) {
	notifs, err := f.store.GetUserNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting notifications: %w", err)
	}
	return notifs, nil
}

func (f *Falo) MarkNotificationRead(ctx context.Context, userID, notifID uint) error {
	if err := f.store.MarkNotificationRead(ctx, userID, notifID); err != nil {
		return fmt.Errorf("failed mark notification read: %w", err)
	}
	return nil
}

func (f *Falo) ClearNotifications(ctx context.Context, userID uint) error {
	if err := f.store.ClearNotifications(ctx, userID); err != nil {
		return fmt.Errorf("failed clear notifications: %w", err)
	}
	return nil
}

func (f *Falo) SupportContact() string {
	return f.cfg.SupportContact
}

// notify records a notification without failing the ledger operation
// it accompanies.
func (f *Falo) notify(ctx context.Context, userID uint, nType model.NotificationType, title, message string) {
	err := f.store.CreateNotification(ctx, model.Notification{
		UserID:  userID,
		Type:    nType,
		Title:   title,
		Message: message,
	})
	if err != nil {
		f.log.Error("failed create notification", zap.Uint("userID", userID), zap.Error(err))
	}
}
