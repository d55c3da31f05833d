package rest

import (
	"time"

	"github.com/faloiraq/falo/internal/adapters/store/model"
)

type tRegistration struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ReferralCode string `json:"referral_code"`
}

type tAuthorization struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tProfile struct {
	Name          string           `json:"name"`
	Username      string           `json:"username"`
	Email         string           `json:"email"`
	Role          model.Role       `json:"role"`
	Status        model.UserStatus `json:"status"`
	ReferralCode  string           `json:"referral_code"`
	ID            uint             `json:"id"`
	Points        int64            `json:"points"`
	ReferralCount int64            `json:"referral_count"`
}

func newProfile(user model.User) tProfile {
	return tProfile{
		ID:            user.ID,
		Name:          user.Name,
		Username:      user.Username,
		Email:         user.Email,
		Role:          user.Role,
		Status:        user.Status,
		ReferralCode:  user.ReferralCode,
		Points:        user.Points,
		ReferralCount: user.ReferralCount,
	}
}

type tService struct {
	Name         string  `json:"name"`
	Platform     string  `json:"platform"`
	Icon         string  `json:"icon"`
	ID           uint    `json:"id"`
	PricePerUnit float64 `json:"price_per_unit"`
	MinAmount    int64   `json:"min_amount"`
}

type tTask struct {
	Platform    string         `json:"platform"`
	Type        model.TaskType `json:"type"`
	Description string         `json:"description"`
	Link        string         `json:"link"`
	ID          uint           `json:"id"`
	Reward      int64          `json:"reward"`
	Completed   bool           `json:"completed"`
}

type tTransfer struct {
	Username string `json:"username"`
	Amount   int64  `json:"amount"`
}

type tRedeem struct {
	Code string `json:"code"`
}

type tPlaceOrder struct {
	TargetUsername string `json:"target_username"`
	ServiceID      uint   `json:"service_id"`
	Amount         int64  `json:"amount"`
}

type tOrderByUser struct {
	createdAt      time.Time
	ServiceName    string            `json:"service_name"`
	TargetUsername string            `json:"target_username"`
	Status         model.OrderStatus `json:"status"`
	CreatedAt      string            `json:"created_at"`
	ID             uint              `json:"id"`
	Amount         int64             `json:"amount"`
	TotalCost      int64             `json:"total_cost"`
}

func (o *tOrderByUser) Prepare() *tOrderByUser {
	o.CreatedAt = o.createdAt.Format(time.RFC3339)
	return o
}

type tNotification struct {
	createdAt time.Time
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      model.NotificationType `json:"type"`
	CreatedAt string                 `json:"created_at"`
	ID        uint                   `json:"id"`
	Read      bool                   `json:"read"`
}

func (n *tNotification) Prepare() *tNotification {
	n.CreatedAt = n.createdAt.Format(time.RFC3339)
	return n
}

type tGiftCode struct {
	expiresAt time.Time
	Code      string `json:"code"`
	ExpiresAt string `json:"expires_at"`
	ID        uint   `json:"id"`
	Reward    int64  `json:"reward"`
}

func (g *tGiftCode) Prepare() *tGiftCode {
	g.ExpiresAt = g.expiresAt.Format(time.RFC3339)
	return g
}

type tReferral struct {
	ReferralCode  string `json:"referral_code"`
	ReferredBy    string `json:"referred_by,omitempty"`
	ReferralCount int64  `json:"referral_count"`
}

type tUserStatus struct {
	Status model.UserStatus `json:"status"`
	UserID uint             `json:"user_id"`
}

type tUserPoints struct {
	Login    string `json:"login"`
	Amount   int64  `json:"amount"`
	Relative bool   `json:"relative"`
}

type tCreateGiftCode struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Reward    int64     `json:"reward"`
}

type tOrderStatus struct {
	Status model.OrderStatus `json:"status"`
}
