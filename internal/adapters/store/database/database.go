package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/faloiraq/falo/internal/adapters/store/errstore"
	"github.com/faloiraq/falo/internal/adapters/store/model"
)

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	var err error
	s := &Store{
		log: zap.NewNop(),
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	s.db = db.WithContext(ctx)

	for _, opt := range options {
		opt(s)
	}

	err = s.db.AutoMigrate(
		&model.User{},
		&model.Order{},
		&model.Service{},
		&model.Task{},
		&model.GiftCode{},
		&model.UsedGiftCode{},
		&model.CompletedTask{},
		&model.Notification{},
	)
	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if err := s.seedCatalog(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed seed catalog: %w", err)
	}

	return s, nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var sqlError *pgconn.PgError
	return errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation
}

func (s *Store) RegisterUser(ctx context.Context, user model.User) (model.User, error) {
	result := s.db.WithContext(ctx).Create(&user)
	if err := result.Error; err != nil {
		if isUniqueViolation(err) {
			return user, errstore.ErrLoginNotUnique
		}
		return user, fmt.Errorf("failed save user: %w", err)
	}

	return user, nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (model.User, error) {
	user := model.User{}
	result := s.db.WithContext(ctx).Where("username = ? OR email = ?", login, login).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", err)
	}

	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	user := model.User{}
	result := s.db.WithContext(ctx).Where(&model.User{Username: username}).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", err)
	}

	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (model.User, error) {
	user := model.User{}
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errstore.ErrNotFoundData
		}
		return user, fmt.Errorf("failed get user: %w", err)
	}

	return user, nil
}

func (s *Store) GetUserByReferralCode(ctx context.Context, code string) (model.User, error) {
	user := model.User{}
	result := s.db.WithContext(ctx).Where(&model.User{ReferralCode: code}).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errstore.ErrNotFoundData
		}
		return user, fmt.Errorf("error found user: %w", err)
	}

	return user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*model.User, error) {
	users := []*model.User{}
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed get users: %w", err)
	}

	return users, nil
}

func (s *Store) SetUserStatus(ctx context.Context, userID uint, status model.UserStatus) error {
	result := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("status", status)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed update user status: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (s *Store) IncrementReferralCount(ctx context.Context, userID uint) error {
	result := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		Update("referral_count", gorm.Expr("referral_count + 1"))
	if err := result.Error; err != nil {
		return fmt.Errorf("failed increment referral count: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (s *Store) lockUser(tx *gorm.DB, userID uint) (model.User, error) {
	user := model.User{}
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errstore.ErrNotFoundData
		}
		return user, fmt.Errorf("failed lock user: %w", err)
	}

	return user, nil
}

// AdjustPoints applies a relative delta under a row lock; the result
// never goes below zero.
func (s *Store) AdjustPoints(ctx context.Context, userID uint, delta int64) (model.User, error) {
	var updated model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.lockUser(tx, userID)
		if err != nil {
			return err
		}

		user.Points += delta
		if user.Points < 0 {
			user.Points = 0
		}
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed save user: %w", err)
		}

		updated = user
		return nil
	})
	if err != nil {
		return updated, fmt.Errorf("failed complete transaction: %w", err)
	}

	return updated, nil
}

func (s *Store) SetPoints(ctx context.Context, userID uint, points int64) (model.User, error) {
	var updated model.User
	if points < 0 {
		points = 0
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.lockUser(tx, userID)
		if err != nil {
			return err
		}

		user.Points = points
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed save user: %w", err)
		}

		updated = user
		return nil
	})
	if err != nil {
		return updated, fmt.Errorf("failed complete transaction: %w", err)
	}

	return updated, nil
}

// CompleteTask credits the task reward and records the completion in
// one transaction. The unique index on (user, task) rejects a repeat
// completion even under concurrent calls.
func (s *Store) CompleteTask(ctx context.Context, userID, taskID uint, reward int64) (model.User, error) {
	var updated model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.lockUser(tx, userID)
		if err != nil {
			return err
		}

		completed := model.CompletedTask{UserID: userID, TaskID: taskID}
		if err := tx.Create(&completed).Error; err != nil {
			if isUniqueViolation(err) {
				return errstore.ErrTaskAlreadyCompleted
			}
			return fmt.Errorf("failed record completed task: %w", err)
		}

		user.Points += reward
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed save user: %w", err)
		}

		updated = user
		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrTaskAlreadyCompleted) {
			return updated, errstore.ErrTaskAlreadyCompleted
		}
		return updated, fmt.Errorf("failed complete transaction: %w", err)
	}

	return updated, nil
}

// TransferPoints debits the sender and credits the recipient as one
// unit. Rows are locked in id order so two opposite transfers cannot
// deadlock, and the balance is re-checked under the lock to close the
// double-spend window.
func (s *Store) TransferPoints(ctx context.Context, senderID, recipientID uint, debit, credit int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		firstID, secondID := senderID, recipientID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}

		first, err := s.lockUser(tx, firstID)
		if err != nil {
			return err
		}
		second, err := s.lockUser(tx, secondID)
		if err != nil {
			return err
		}

		sender, recipient := &first, &second
		if sender.ID != senderID {
			sender, recipient = &second, &first
		}

		if sender.Points < debit {
			return fmt.Errorf("%w: %d", errstore.ErrBalanceNotEnough, debit)
		}

		sender.Points -= debit
		recipient.Points += credit

		if err := tx.Save(sender).Error; err != nil {
			return fmt.Errorf("failed save sender: %w", err)
		}
		if err := tx.Save(recipient).Error; err != nil {
			return fmt.Errorf("failed save recipient: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrBalanceNotEnough) || errors.Is(err, errstore.ErrNotFoundData) {
			return err
		}
		return fmt.Errorf("failed complete transaction: %w", err)
	}

	return nil
}

// RedeemGiftCode credits the reward and marks the code used by this
// user in one transaction. The (user, gift) unique index keeps a code
// single-use per user; the code row itself stays untouched for others.
func (s *Store) RedeemGiftCode(ctx context.Context, userID, giftID uint, reward int64) (model.User, error) {
	var updated model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.lockUser(tx, userID)
		if err != nil {
			return err
		}

		used := model.UsedGiftCode{UserID: userID, GiftCodeID: giftID}
		if err := tx.Create(&used).Error; err != nil {
			if isUniqueViolation(err) {
				return errstore.ErrGiftCodeAlreadyUsed
			}
			return fmt.Errorf("failed record used gift code: %w", err)
		}

		user.Points += reward
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed save user: %w", err)
		}

		updated = user
		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrGiftCodeAlreadyUsed) {
			return updated, errstore.ErrGiftCodeAlreadyUsed
		}
		return updated, fmt.Errorf("failed complete transaction: %w", err)
	}

	return updated, nil
}

func (s *Store) GetGiftCode(ctx context.Context, code string) (model.GiftCode, error) {
	gift := model.GiftCode{}
	result := s.db.WithContext(ctx).Where("upper(code) = ?", code).First(&gift)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gift, errstore.ErrNotFoundData
		}
		return gift, fmt.Errorf("failed get gift code: %w", err)
	}

	return gift, nil
}

func (s *Store) HasUsedGiftCode(ctx context.Context, userID, giftID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UsedGiftCode{}).
		Where(&model.UsedGiftCode{UserID: userID, GiftCodeID: giftID}).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed count used gift codes: %w", err)
	}

	return count > 0, nil
}

func (s *Store) CreateGiftCode(ctx context.Context, gift model.GiftCode) (model.GiftCode, error) {
	if err := s.db.WithContext(ctx).Create(&gift).Error; err != nil {
		if isUniqueViolation(err) {
			return gift, errstore.ErrGiftCodeNotUnique
		}
		return gift, fmt.Errorf("failed create gift code: %w", err)
	}

	return gift, nil
}

func (s *Store) DeleteGiftCode(ctx context.Context, giftID uint) error {
	result := s.db.WithContext(ctx).Delete(&model.GiftCode{}, giftID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed delete gift code: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (s *Store) ListGiftCodes(ctx context.Context) ([]*model.GiftCode, error) {
	gifts := []*model.GiftCode{}
	if err := s.db.WithContext(ctx).Order("id").Find(&gifts).Error; err != nil {
		return nil, fmt.Errorf("failed get gift codes: %w", err)
	}

	return gifts, nil
}

func (s *Store) ListServices(ctx context.Context) ([]*model.Service, error) {
	services := []*model.Service{}
	if err := s.db.WithContext(ctx).Order("id").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed get services: %w", err)
	}

	return services, nil
}

func (s *Store) GetService(ctx context.Context, serviceID uint) (model.Service, error) {
	service := model.Service{}
	if err := s.db.WithContext(ctx).First(&service, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service, errstore.ErrNotFoundData
		}
		return service, fmt.Errorf("failed get service: %w", err)
	}

	return service, nil
}

func (s *Store) ListTasks(ctx context.Context) ([]*model.Task, error) {
	tasks := []*model.Task{}
	if err := s.db.WithContext(ctx).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed get tasks: %w", err)
	}

	return tasks, nil
}

func (s *Store) GetTask(ctx context.Context, taskID uint) (model.Task, error) {
	task := model.Task{}
	if err := s.db.WithContext(ctx).First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return task, errstore.ErrNotFoundData
		}
		return task, fmt.Errorf("failed get task: %w", err)
	}

	return task, nil
}

func (s *Store) ListCompletedTasks(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := s.db.WithContext(ctx).Model(&model.CompletedTask{}).
		Where("user_id = ?", userID).Pluck("task_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed get completed tasks: %w", err)
	}

	return ids, nil
}

// PlaceOrder debits the balance and creates the order record in one
// transaction; if either part fails neither is committed.
func (s *Store) PlaceOrder(ctx context.Context, order *model.Order, debit int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if debit > 0 {
			user, err := s.lockUser(tx, order.UserID)
			if err != nil {
				return err
			}
			if user.Points < debit {
				return fmt.Errorf("%w: %d", errstore.ErrBalanceNotEnough, debit)
			}
			user.Points -= debit
			if err := tx.Save(&user).Error; err != nil {
				return fmt.Errorf("failed save user: %w", err)
			}
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed create order: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrBalanceNotEnough) || errors.Is(err, errstore.ErrNotFoundData) {
			return err
		}
		return fmt.Errorf("failed complete transaction: %w", err)
	}

	return nil
}

func (s *Store) GetUserOrders(ctx context.Context, userID uint) ([]*model.Order, error) {
	orders := []*model.Order{}
	if err := s.db.WithContext(ctx).Where(&model.Order{UserID: userID}).Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed get orders: %w", err)
	}

	return orders, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]*model.Order, error) {
	orders := []*model.Order{}
	if err := s.db.WithContext(ctx).Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed get orders: %w", err)
	}

	return orders, nil
}

func (s *Store) GetOrder(ctx context.Context, orderID uint) (model.Order, error) {
	order := model.Order{}
	if err := s.db.WithContext(ctx).First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, errstore.ErrNotFoundData
		}
		return order, fmt.Errorf("failed get order: %w", err)
	}

	return order, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus) error {
	result := s.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", orderID).Update("status", status)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed update order status: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (s *Store) CreateNotification(ctx context.Context, notif model.Notification) error {
	if err := s.db.WithContext(ctx).Create(&notif).Error; err != nil {
		return fmt.Errorf("failed create notification: %w", err)
	}

	return nil
}

func (s *Store) GetUserNotifications(ctx context.Context, userID uint) ([]*model.Notification, error) {
	notifs := []*model.Notification{}
	if err := s.db.WithContext(ctx).Where(&model.Notification{UserID: userID}).Order("id desc").Find(&notifs).Error; err != nil {
		return nil, fmt.Errorf("failed get notifications: %w", err)
	}

	return notifs, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, userID, notifID uint) error {
	result := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notifID, userID).Update("read", true)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed mark notification read: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (s *Store) ClearNotifications(ctx context.Context, userID uint) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Notification{}).Error; err != nil {
		return fmt.Errorf("failed clear notifications: %w", err)
	}

	return nil
}
