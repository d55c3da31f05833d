package falo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/faloiraq/falo/internal/adapters/store/errstore"
	"github.com/faloiraq/falo/internal/adapters/store/model"
	"github.com/faloiraq/falo/internal/core/falo"
	"github.com/faloiraq/falo/internal/mocks/store"
)

func newService(t *testing.T, options ...func(*store.MockStore)) (*falo.Falo, *store.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storeMock := store.NewMockStore(ctrl)
	for _, opt := range options {
		opt(storeMock)
	}
	return falo.New(&falo.Config{SupportContact: "+9647700000000"}, storeMock), storeMock
}

func TestFalo_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("correct with referral", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			RegisterUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) (model.User, error) {
				assert.Equal(t, "ahmed", user.Username)
				assert.Equal(t, "ahmed@example.com", user.Email)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.Equal(t, model.UserStatusActive, user.Status)
				assert.Equal(t, "IQ-AAAAAAAA", user.ReferredBy)
				user.ID = 7
				return user, nil
			}).
			Times(1)
		storeMock.EXPECT().
			GetUserByReferralCode(ctx, "IQ-AAAAAAAA").
			Return(model.User{ID: 3}, nil).
			Times(1)
		storeMock.EXPECT().
			IncrementReferralCount(ctx, uint(3)).
			Return(nil).
			Times(1)

		user, err := service.Register(ctx, falo.RegistrationInput{
			Name:         "Ahmed",
			Username:     "Ahmed",
			Email:        "Ahmed@Example.com",
			Password:     "pass",
			ReferralCode: "iq-aaaaaaaa",
		})
		assert.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
	})

	t.Run("login not unique", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			RegisterUser(ctx, gomock.Any()).
			Return(model.User{}, errstore.ErrLoginNotUnique).
			Times(1)

		_, err := service.Register(ctx, falo.RegistrationInput{
			Username: "ahmed",
			Email:    "ahmed@example.com",
			Password: "pass",
		})
		assert.ErrorIs(t, err, errstore.ErrLoginNotUnique)
	})

	t.Run("invalid email", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.Register(ctx, falo.RegistrationInput{
			Username: "ahmed",
			Email:    "not-an-email",
			Password: "pass",
		})
		assert.ErrorIs(t, err, falo.ErrEmailNotValid)
	})
}

func TestFalo_Transfer(t *testing.T) {
	ctx := context.Background()

	t.Run("correct with fee", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Username: "sender", Points: 1250}, nil).
			Times(1)
		storeMock.EXPECT().
			GetUserByUsername(ctx, "friend").
			Return(model.User{ID: 2, Username: "friend", Points: 0}, nil).
			Times(1)
		storeMock.EXPECT().
			TransferPoints(ctx, uint(1), uint(2), int64(250), int64(200)).
			Return(nil).
			Times(1)
		storeMock.EXPECT().
			CreateNotification(ctx, gomock.Any()).
			Return(nil).
			Times(1)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Username: "sender", Points: 1000}, nil).
			Times(1)

		updated, err := service.Transfer(ctx, 1, "friend", 200)
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), updated.Points)
	})

	t.Run("insufficient covers fee", func(t *testing.T) {
		service, storeMock := newService(t)

		// 100 points cannot cover 100 + the 50 point fee. The
		// recipient is never looked up.
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Points: 100}, nil).
			Times(1)

		_, err := service.Transfer(ctx, 1, "friend", 100)
		assert.ErrorIs(t, err, falo.ErrInsufficientBalance)
	})

	t.Run("admin pays nothing", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Role: model.RoleAdmin, Points: 0}, nil).
			Times(1)
		storeMock.EXPECT().
			GetUserByUsername(ctx, "friend").
			Return(model.User{ID: 2, Username: "friend"}, nil).
			Times(1)
		storeMock.EXPECT().
			TransferPoints(ctx, uint(1), uint(2), int64(0), int64(500)).
			Return(nil).
			Times(1)
		storeMock.EXPECT().
			CreateNotification(ctx, gomock.Any()).
			Return(nil).
			Times(1)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Role: model.RoleAdmin, Points: 0}, nil).
			Times(1)

		_, err := service.Transfer(ctx, 1, "friend", 500)
		assert.NoError(t, err)
	})

	t.Run("recipient not found", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Points: 1000}, nil).
			Times(1)
		storeMock.EXPECT().
			GetUserByUsername(ctx, "ghost").
			Return(model.User{}, errstore.ErrNotFoundData).
			Times(1)

		_, err := service.Transfer(ctx, 1, "ghost", 100)
		assert.ErrorIs(t, err, falo.ErrRecipientNotFound)
	})

	t.Run("self transfer", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Username: "sender", Points: 1000}, nil).
			Times(1)
		storeMock.EXPECT().
			GetUserByUsername(ctx, "sender").
			Return(model.User{ID: 1, Username: "sender", Points: 1000}, nil).
			Times(1)

		_, err := service.Transfer(ctx, 1, "sender", 100)
		assert.ErrorIs(t, err, falo.ErrSelfTransfer)
	})

	t.Run("two consecutive transfers", func(t *testing.T) {
		service, storeMock := newService(t)

		// 1250 -> 1000 -> 750: each 200-point transfer costs 250.
		balance := int64(1250)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			DoAndReturn(func(context.Context, uint) (model.User, error) {
				return model.User{ID: 1, Username: "sender", Points: balance}, nil
			}).
			Times(4)
		storeMock.EXPECT().
			GetUserByUsername(ctx, "friend").
			Return(model.User{ID: 2, Username: "friend"}, nil).
			Times(2)
		storeMock.EXPECT().
			TransferPoints(ctx, uint(1), uint(2), int64(250), int64(200)).
			DoAndReturn(func(context.Context, uint, uint, int64, int64) error {
				balance -= 250
				return nil
			}).
			Times(2)
		storeMock.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil).Times(2)

		updated, err := service.Transfer(ctx, 1, "friend", 200)
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), updated.Points)

		updated, err = service.Transfer(ctx, 1, "friend", 200)
		assert.NoError(t, err)
		assert.Equal(t, int64(750), updated.Points)
	})

	t.Run("zero amount", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.Transfer(ctx, 1, "friend", 0)
		assert.ErrorIs(t, err, falo.ErrAmountNotValid)
	})
}

func TestFalo_RedeemGift(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(24 * time.Hour)

	t.Run("correct", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetGiftCode(ctx, "WELCOME50").
			Return(model.GiftCode{ID: 4, Code: "WELCOME50", Reward: 50, ExpiresAt: future}, nil).
			Times(1)
		storeMock.EXPECT().
			HasUsedGiftCode(ctx, uint(1), uint(4)).
			Return(false, nil).
			Times(1)
		storeMock.EXPECT().
			RedeemGiftCode(ctx, uint(1), uint(4), int64(50)).
			Return(model.User{ID: 1, Points: 1050}, nil).
			Times(1)
		storeMock.EXPECT().
			CreateNotification(ctx, gomock.Any()).
			Return(nil).
			Times(1)

		gift, user, err := service.RedeemGift(ctx, 1, " welcome50 ")
		assert.NoError(t, err)
		assert.Equal(t, int64(50), gift.Reward)
		assert.Equal(t, int64(1050), user.Points)
	})

	t.Run("not found", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetGiftCode(ctx, "NOPE").
			Return(model.GiftCode{}, errstore.ErrNotFoundData).
			Times(1)

		_, _, err := service.RedeemGift(ctx, 1, "nope")
		assert.ErrorIs(t, err, falo.ErrCodeNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetGiftCode(ctx, "OLD").
			Return(model.GiftCode{ID: 4, Code: "OLD", Reward: 50, ExpiresAt: time.Now().Add(-time.Hour)}, nil).
			Times(1)

		_, _, err := service.RedeemGift(ctx, 1, "old")
		assert.ErrorIs(t, err, falo.ErrCodeExpired)
	})

	t.Run("already used", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetGiftCode(ctx, "WELCOME50").
			Return(model.GiftCode{ID: 4, Code: "WELCOME50", Reward: 50, ExpiresAt: future}, nil).
			Times(1)
		storeMock.EXPECT().
			HasUsedGiftCode(ctx, uint(1), uint(4)).
			Return(true, nil).
			Times(1)

		_, _, err := service.RedeemGift(ctx, 1, "welcome50")
		assert.ErrorIs(t, err, falo.ErrCodeAlreadyUsed)
	})

	t.Run("store lost the race", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetGiftCode(ctx, "WELCOME50").
			Return(model.GiftCode{ID: 4, Code: "WELCOME50", Reward: 50, ExpiresAt: future}, nil).
			Times(1)
		storeMock.EXPECT().
			HasUsedGiftCode(ctx, uint(1), uint(4)).
			Return(false, nil).
			Times(1)
		storeMock.EXPECT().
			RedeemGiftCode(ctx, uint(1), uint(4), int64(50)).
			Return(model.User{}, errstore.ErrGiftCodeAlreadyUsed).
			Times(1)

		_, _, err := service.RedeemGift(ctx, 1, "welcome50")
		assert.ErrorIs(t, err, falo.ErrCodeAlreadyUsed)
	})
}

func TestFalo_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	followers := model.Service{ID: 1, Name: "Instagram Followers", PricePerUnit: 9, MinAmount: 100}

	t.Run("one point short", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().GetService(ctx, uint(1)).Return(followers, nil).Times(1)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Points: 899}, nil).
			Times(1)

		_, err := service.PlaceOrder(ctx, 1, 1, "target", 100)
		assert.ErrorIs(t, err, falo.ErrServiceUnaffordable)
	})

	t.Run("exact balance", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().GetService(ctx, uint(1)).Return(followers, nil).Times(1)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Points: 900}, nil).
			Times(1)
		storeMock.EXPECT().
			PlaceOrder(ctx, gomock.Any(), int64(900)).
			DoAndReturn(func(_ context.Context, order *model.Order, _ int64) error {
				assert.Equal(t, int64(900), order.TotalCost)
				assert.Equal(t, model.OrderStateProcessing, order.Status)
				order.ID = 11
				return nil
			}).
			Times(1)
		storeMock.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil).Times(1)

		order, err := service.PlaceOrder(ctx, 1, 1, "target", 100)
		assert.NoError(t, err)
		assert.Equal(t, uint(11), order.ID)
	})

	t.Run("fractional price rounds up", func(t *testing.T) {
		service, storeMock := newService(t)

		reels := model.Service{ID: 3, Name: "Reels Views", PricePerUnit: 0.5, MinAmount: 500}
		storeMock.EXPECT().GetService(ctx, uint(3)).Return(reels, nil).Times(1)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Points: 1000}, nil).
			Times(1)
		storeMock.EXPECT().
			PlaceOrder(ctx, gomock.Any(), int64(251)).
			Return(nil).
			Times(1)
		storeMock.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil).Times(1)

		order, err := service.PlaceOrder(ctx, 1, 3, "target", 501)
		assert.NoError(t, err)
		assert.Equal(t, int64(251), order.TotalCost)
	})

	t.Run("below minimum", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().GetService(ctx, uint(1)).Return(followers, nil).Times(1)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Points: 10000}, nil).
			Times(1)

		_, err := service.PlaceOrder(ctx, 1, 1, "target", 99)
		assert.ErrorIs(t, err, falo.ErrAmountBelowMinimum)
	})

	t.Run("free service never debits", func(t *testing.T) {
		service, storeMock := newService(t)

		support := model.Service{ID: 4, Name: "Support Contact", PricePerUnit: 0, MinAmount: 0}
		storeMock.EXPECT().GetService(ctx, uint(4)).Return(support, nil).Times(1)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Points: 0}, nil).
			Times(1)
		storeMock.EXPECT().
			PlaceOrder(ctx, gomock.Any(), int64(0)).
			Return(nil).
			Times(1)
		storeMock.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil).Times(1)

		order, err := service.PlaceOrder(ctx, 1, 4, "target", 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), order.TotalCost)
	})

	t.Run("admin never debits", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().GetService(ctx, uint(1)).Return(followers, nil).Times(1)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Role: model.RoleAdmin, Points: 0}, nil).
			Times(1)
		storeMock.EXPECT().
			PlaceOrder(ctx, gomock.Any(), int64(0)).
			Return(nil).
			Times(1)
		storeMock.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil).Times(1)

		order, err := service.PlaceOrder(ctx, 1, 1, "target", 100)
		assert.NoError(t, err)
		assert.Equal(t, int64(900), order.TotalCost)
	})
}

func TestFalo_CompleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("correct", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetTask(ctx, uint(2)).
			Return(model.Task{ID: 2, Reward: 3}, nil).
			Times(1)
		storeMock.EXPECT().
			CompleteTask(ctx, uint(1), uint(2), int64(3)).
			Return(model.User{ID: 1, Points: 3}, nil).
			Times(1)

		user, err := service.CompleteTask(ctx, 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), user.Points)
	})

	t.Run("already completed", func(t *testing.T) {
		service, storeMock := newService(t)

		storeMock.EXPECT().
			GetTask(ctx, uint(2)).
			Return(model.Task{ID: 2, Reward: 3}, nil).
			Times(1)
		storeMock.EXPECT().
			CompleteTask(ctx, uint(1), uint(2), int64(3)).
			Return(model.User{}, errstore.ErrTaskAlreadyCompleted).
			Times(1)

		_, err := service.CompleteTask(ctx, 1, 2)
		assert.ErrorIs(t, err, falo.ErrTaskCompleted)
	})

	t.Run("burst locks the account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := store.NewMockStore(ctrl)

		// Fixed clock: every call lands inside the abuse window.
		service := falo.New(&falo.Config{}, storeMock, falo.Clock(func() time.Time {
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		}))

		storeMock.EXPECT().
			GetTask(ctx, uint(2)).
			Return(model.Task{ID: 2, Reward: 3}, nil).
			Times(6)
		storeMock.EXPECT().
			CompleteTask(ctx, uint(1), uint(2), int64(3)).
			Return(model.User{ID: 1}, nil).
			Times(6)
		storeMock.EXPECT().
			SetUserStatus(ctx, uint(1), model.UserStatusCompromised).
			Return(nil).
			Times(1)

		for i := 0; i < 6; i++ {
			_, err := service.CompleteTask(ctx, 1, 2)
			assert.NoError(t, err)
		}
		_, err := service.CompleteTask(ctx, 1, 2)
		assert.ErrorIs(t, err, falo.ErrUserCompromised)
	})
}
