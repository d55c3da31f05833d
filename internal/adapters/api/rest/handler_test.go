package rest_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/faloiraq/falo/internal/adapters/api/rest"
	"github.com/faloiraq/falo/internal/adapters/store/errstore"
	"github.com/faloiraq/falo/internal/adapters/store/model"
	"github.com/faloiraq/falo/internal/core/falo"
	"github.com/faloiraq/falo/internal/mocks/store"
	"github.com/faloiraq/falo/pkg/jwt"
)

var (
	cookieKey  = "UserID"
	testSecret = []byte("secret_key")
)

func newTestServer(t *testing.T, storeMock *store.MockStore) *rest.Server {
	t.Helper()
	service := falo.New(&falo.Config{SupportContact: "+9647700000000"}, storeMock)
	server, err := rest.New(service, rest.SetSecretKey(testSecret))
	assert.NoError(t, err)
	return server
}

func addAuthCookie(t *testing.T, r *http.Request, userID uint) {
	t.Helper()
	jwtRest := jwt.New(testSecret)
	signedCookie, err := jwtRest.Create(cookieKey, strconv.Itoa(int(userID)))
	assert.NoError(t, err)
	r.AddCookie(&http.Cookie{
		Name:  "token",
		Value: signedCookie,
		Path:  "/",
	})
}

func TestServer_handlerRegister(t *testing.T) {
	ctx := context.Background()
	hashPass, err := falo.HashPassword("pass")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		username string
		email    string
		password string
		regErr   error
		status   int
	}{
		{
			name:     "correct",
			username: "ahmed",
			email:    "ahmed@example.com",
			password: "pass",
			status:   http.StatusOK,
		},
		{
			name:     "invalid email",
			username: "ahmed",
			email:    "nope",
			password: "pass",
			status:   http.StatusBadRequest,
		},
		{
			name:     "not unique",
			username: "ahmed",
			email:    "ahmed@example.com",
			password: "pass",
			regErr:   errstore.ErrLoginNotUnique,
			status:   http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)

			if tt.status != http.StatusBadRequest {
				storeMock.EXPECT().
					RegisterUser(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) (model.User, error) {
						if tt.regErr != nil {
							return user, tt.regErr
						}
						user.ID = 1
						user.PasswordHash = hashPass
						return user, nil
					}).
					Times(1)
			}
			if tt.status == http.StatusOK {
				storeMock.EXPECT().
					GetUserByLogin(ctx, tt.username).
					Return(model.User{ID: 1, Username: tt.username, PasswordHash: hashPass}, nil).
					Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(
				`{"username":%q, "email":%q, "password":%q}`,
				tt.username, tt.email, tt.password,
			))
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", body)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err = result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerLogin(t *testing.T) {
	ctx := context.Background()
	hashPass, err := falo.HashPassword("pass")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		login      string
		password   string
		userStatus model.UserStatus
		storeErr   error
		status     int
	}{
		{
			name:       "correct",
			login:      "ahmed",
			password:   "pass",
			userStatus: model.UserStatusActive,
			status:     http.StatusOK,
		},
		{
			name:       "wrong password",
			login:      "ahmed",
			password:   "wrong",
			userStatus: model.UserStatusActive,
			status:     http.StatusUnauthorized,
		},
		{
			name:     "unknown user",
			login:    "ghost",
			password: "pass",
			storeErr: errstore.ErrNotFoundData,
			status:   http.StatusUnauthorized,
		},
		{
			name:       "banned",
			login:      "ahmed",
			password:   "pass",
			userStatus: model.UserStatusBanned,
			status:     http.StatusForbidden,
		},
		{
			name:     "empty",
			login:    "",
			password: "",
			status:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)

			if tt.status != http.StatusBadRequest {
				storeMock.EXPECT().
					GetUserByLogin(ctx, tt.login).
					Return(model.User{
						ID:           1,
						Username:     tt.login,
						PasswordHash: hashPass,
						Status:       tt.userStatus,
					}, tt.storeErr).
					Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"login":%q, "password":%q}`, tt.login, tt.password))
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", body)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err = result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerProfile(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		userID uint
		status int
	}{
		{
			name:   "ok",
			userID: 1,
			status: http.StatusOK,
		},
		{
			name:   "unauthorize",
			userID: 1,
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.status == http.StatusOK {
				storeMock.EXPECT().
					GetUserByID(ctx, tt.userID).
					Return(model.User{ID: tt.userID, Username: "ahmed", Points: 1250, Status: model.UserStatusActive}, nil).
					Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			if tt.status != http.StatusUnauthorized {
				addAuthCookie(t, r, tt.userID)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"points":1250`)
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerTransfer(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		sender   model.User
		username string
		amount   int64
		status   int
	}{
		{
			name:     "ok",
			sender:   model.User{ID: 1, Username: "sender", Points: 1250},
			username: "friend",
			amount:   200,
			status:   http.StatusOK,
		},
		{
			name:     "insufficient",
			sender:   model.User{ID: 1, Username: "sender", Points: 100},
			username: "friend",
			amount:   100,
			status:   http.StatusPaymentRequired,
		},
		{
			name:     "recipient not found",
			sender:   model.User{ID: 1, Username: "sender", Points: 1250},
			username: "ghost",
			amount:   200,
			status:   http.StatusNotFound,
		},
		{
			name:     "self transfer",
			sender:   model.User{ID: 1, Username: "sender", Points: 1250},
			username: "sender",
			amount:   200,
			status:   http.StatusConflict,
		},
		{
			name:     "bad amount",
			sender:   model.User{ID: 1, Username: "sender", Points: 1250},
			username: "friend",
			amount:   -5,
			status:   http.StatusBadRequest,
		},
		{
			name:     "unauthorize",
			username: "friend",
			amount:   200,
			status:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)

			switch tt.status {
			case http.StatusOK:
				storeMock.EXPECT().GetUserByID(ctx, tt.sender.ID).Return(tt.sender, nil).Times(1)
				storeMock.EXPECT().
					GetUserByUsername(ctx, tt.username).
					Return(model.User{ID: 2, Username: tt.username}, nil).
					Times(1)
				storeMock.EXPECT().
					TransferPoints(ctx, tt.sender.ID, uint(2), tt.amount+50, tt.amount).
					Return(nil).
					Times(1)
				storeMock.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil).Times(1)
				storeMock.EXPECT().
					GetUserByID(ctx, tt.sender.ID).
					Return(model.User{ID: 1, Username: "sender", Points: 1000}, nil).
					Times(1)
			case http.StatusPaymentRequired:
				storeMock.EXPECT().GetUserByID(ctx, tt.sender.ID).Return(tt.sender, nil).Times(1)
			case http.StatusNotFound:
				storeMock.EXPECT().GetUserByID(ctx, tt.sender.ID).Return(tt.sender, nil).Times(1)
				storeMock.EXPECT().
					GetUserByUsername(ctx, tt.username).
					Return(model.User{}, errstore.ErrNotFoundData).
					Times(1)
			case http.StatusConflict:
				storeMock.EXPECT().GetUserByID(ctx, tt.sender.ID).Return(tt.sender, nil).Times(1)
				storeMock.EXPECT().
					GetUserByUsername(ctx, tt.username).
					Return(tt.sender, nil).
					Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"username":%q, "amount":%d}`, tt.username, tt.amount))
			r := httptest.NewRequest(http.MethodPost, "/api/user/transfer", body)
			if tt.status != http.StatusUnauthorized {
				addAuthCookie(t, r, tt.sender.ID)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"points":1000`)
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerRedeemGift(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name   string
		code   string
		gift   model.GiftCode
		used   bool
		status int
	}{
		{
			name:   "ok",
			code:   "WELCOME50",
			gift:   model.GiftCode{ID: 4, Code: "WELCOME50", Reward: 50, ExpiresAt: future},
			status: http.StatusOK,
		},
		{
			name:   "not found",
			code:   "NOPE",
			status: http.StatusNotFound,
		},
		{
			name:   "expired",
			code:   "OLD",
			gift:   model.GiftCode{ID: 4, Code: "OLD", Reward: 50, ExpiresAt: time.Now().Add(-time.Hour)},
			status: http.StatusGone,
		},
		{
			name:   "already used",
			code:   "WELCOME50",
			gift:   model.GiftCode{ID: 4, Code: "WELCOME50", Reward: 50, ExpiresAt: future},
			used:   true,
			status: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)

			if tt.status == http.StatusNotFound {
				storeMock.EXPECT().
					GetGiftCode(ctx, tt.code).
					Return(model.GiftCode{}, errstore.ErrNotFoundData).
					Times(1)
			} else {
				storeMock.EXPECT().GetGiftCode(ctx, tt.code).Return(tt.gift, nil).Times(1)
			}
			if tt.status == http.StatusOK || tt.status == http.StatusConflict {
				storeMock.EXPECT().
					HasUsedGiftCode(ctx, uint(1), tt.gift.ID).
					Return(tt.used, nil).
					Times(1)
			}
			if tt.status == http.StatusOK {
				storeMock.EXPECT().
					RedeemGiftCode(ctx, uint(1), tt.gift.ID, tt.gift.Reward).
					Return(model.User{ID: 1, Points: 1050}, nil).
					Times(1)
				storeMock.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil).Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"code":%q}`, tt.code))
			r := httptest.NewRequest(http.MethodPost, "/api/user/gifts/redeem", body)
			addAuthCookie(t, r, 1)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerPlaceOrder(t *testing.T) {
	ctx := context.Background()
	followers := model.Service{ID: 1, Name: "Instagram Followers", PricePerUnit: 9, MinAmount: 100}

	tests := []struct {
		name   string
		user   model.User
		amount int64
		debit  int64
		status int
	}{
		{
			name:   "ok",
			user:   model.User{ID: 1, Points: 1000},
			amount: 100,
			debit:  900,
			status: http.StatusOK,
		},
		{
			name:   "unaffordable",
			user:   model.User{ID: 1, Points: 899},
			amount: 100,
			status: http.StatusPaymentRequired,
		},
		{
			name:   "below minimum",
			user:   model.User{ID: 1, Points: 10000},
			amount: 99,
			status: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().GetService(ctx, followers.ID).Return(followers, nil).Times(1)
			storeMock.EXPECT().GetUserByID(ctx, tt.user.ID).Return(tt.user, nil).Times(1)
			if tt.status == http.StatusOK {
				storeMock.EXPECT().
					PlaceOrder(ctx, gomock.Any(), tt.debit).
					Return(nil).
					Times(1)
				storeMock.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil).Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(
				`{"service_id":%d, "target_username":"target", "amount":%d}`,
				followers.ID, tt.amount,
			))
			r := httptest.NewRequest(http.MethodPost, "/api/user/orders", body)
			addAuthCookie(t, r, tt.user.ID)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerCompleteTask(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		storeErr error
		status   int
	}{
		{
			name:   "ok",
			status: http.StatusOK,
		},
		{
			name:     "already completed",
			storeErr: errstore.ErrTaskAlreadyCompleted,
			status:   http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				GetTask(ctx, uint(2)).
				Return(model.Task{ID: 2, Reward: 3}, nil).
				Times(1)
			storeMock.EXPECT().
				CompleteTask(ctx, uint(1), uint(2), int64(3)).
				Return(model.User{ID: 1, Points: 3}, tt.storeErr).
				Times(1)

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/user/tasks/2/complete", nil)
			addAuthCookie(t, r, 1)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_adminOnly(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		role   model.Role
		status int
	}{
		{
			name:   "admin allowed",
			role:   model.RoleAdmin,
			status: http.StatusOK,
		},
		{
			name:   "user forbidden",
			role:   model.RoleUser,
			status: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				GetUserByID(ctx, uint(1)).
				Return(model.User{ID: 1, Role: tt.role, Status: model.UserStatusActive}, nil).
				Times(1)
			if tt.status == http.StatusOK {
				storeMock.EXPECT().
					ListUsers(ctx).
					Return([]*model.User{{ID: 1}}, nil).
					Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			addAuthCookie(t, r, 1)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}
