package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type UserStatus string

const (
	UserStatusActive      UserStatus = "ACTIVE"
	UserStatusBanned      UserStatus = "BANNED"
	UserStatusCompromised UserStatus = "COMPROMISED"
)

type User struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Name          string
	Username      string `gorm:"unique"`
	Email         string `gorm:"unique"`
	PasswordHash  string
	Role          Role       `gorm:"default:USER"`
	Status        UserStatus `gorm:"default:ACTIVE"`
	ReferralCode  string     `gorm:"unique"`
	ReferredBy    string
	ID            uint `gorm:"primarykey"`
	Points        int64
	ReferralCount int64
}

type OrderStatus string

const (
	OrderStatePending    OrderStatus = "PENDING"
	OrderStateProcessing OrderStatus = "PROCESSING"
	OrderStateCompleted  OrderStatus = "COMPLETED"
	OrderStateRejected   OrderStatus = "REJECTED"
)

type Order struct {
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ServiceName    string
	TargetUsername string
	Status         OrderStatus `gorm:"default:PROCESSING"`
	User           User
	ID             uint `gorm:"primarykey"`
	UserID         uint `gorm:"index"`
	ServiceID      uint `gorm:"index"`
	Amount         int64
	TotalCost      int64
}

type Service struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Platform     string
	Icon         string
	ID           uint `gorm:"primarykey"`
	PricePerUnit float64
	MinAmount    int64
}

type GiftCode struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
	Code      string `gorm:"unique"`
	ID        uint   `gorm:"primarykey"`
	Reward    int64
}

// UsedGiftCode marks a gift code as spent by one user. The composite
// unique index is what makes redemption single-use per user.
type UsedGiftCode struct {
	CreatedAt  time.Time
	User       User
	GiftCode   GiftCode
	ID         uint `gorm:"primarykey"`
	UserID     uint `gorm:"index;uniqueIndex:idx_user_gift"`
	GiftCodeID uint `gorm:"index;uniqueIndex:idx_user_gift"`
}

type TaskType string

const (
	TaskTypeFollow TaskType = "FOLLOW"
	TaskTypeLike   TaskType = "LIKE"
	TaskTypeView   TaskType = "VIEW"
)

type Task struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Platform    string
	Type        TaskType
	Description string
	Link        string
	ID          uint `gorm:"primarykey"`
	Reward      int64
}

// CompletedTask records a task reward already paid out to a user, so a
// second completion is rejected instead of credited twice.
type CompletedTask struct {
	CreatedAt time.Time
	User      User
	Task      Task
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"index;uniqueIndex:idx_user_task"`
	TaskID    uint `gorm:"index;uniqueIndex:idx_user_task"`
}

type NotificationType string

const (
	NotificationOrder        NotificationType = "ORDER"
	NotificationTransfer     NotificationType = "TRANSFER"
	NotificationGift         NotificationType = "GIFT"
	NotificationAnnouncement NotificationType = "ANNOUNCEMENT"
)

type Notification struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	Message   string
	Type      NotificationType
	User      User
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"index"`
	Read      bool
}
