package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/faloiraq/falo/docs"
	"github.com/faloiraq/falo/internal/adapters/store/model"
	"github.com/faloiraq/falo/internal/core/falo"
	"github.com/faloiraq/falo/pkg/jwt"
)

var (
	cookieName = "token"
	cookieKey  = "UserID"

	errUnauthorize = errors.New("unauthorize")
)

type faloI interface {
	Register(ctx context.Context, input falo.RegistrationInput) (model.User, error)
	Authorization(ctx context.Context, login, password string) (model.User, error)
	Profile(ctx context.Context, userID uint) (model.User, error)
	Services(ctx context.Context) ([]*model.Service, error)
	Tasks(ctx context.Context, userID uint) ([]*model.Task, map[uint]bool, error)
	CompleteTask(ctx context.Context, userID, taskID uint) (model.User, error)
	Transfer(ctx context.Context, senderID uint, targetUsername string, amount int64) (model.User, error)
	RedeemGift(ctx context.Context, userID uint, code string) (model.GiftCode, model.User, error)
	PlaceOrder(ctx context.Context, userID, serviceID uint, targetUsername string, amount int64) (model.Order, error)
	GetUserOrders(ctx context.Context, userID uint) ([]*model.Order, error)
	Notifications(ctx context.Context, userID uint) ([]*model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notifID uint) error
	ClearNotifications(ctx context.Context, userID uint) error
	SupportContact() string
	ListUsers(ctx context.Context) ([]*model.User, error)
	SetUserStatus(ctx context.Context, userID uint, status model.UserStatus) error
	SetUserPoints(ctx context.Context, login string, amount int64, relative bool) (model.User, error)
	CreateGiftCode(ctx context.Context, code string, reward int64, expiresAt time.Time) (model.GiftCode, error)
	DeleteGiftCode(ctx context.Context, giftID uint) error
	ListGiftCodes(ctx context.Context) ([]*model.GiftCode, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus) error
}

type Server struct {
	log     *zap.Logger
	engine  *gin.Engine
	service faloI
	address string
	secret  []byte
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		s.secret = []byte(cfg.Secret)
	}
}

func SetAddress(address string) Option {
	return func(s *Server) {
		s.address = address
	}
}

func SetSecretKey(key []byte) Option {
	return func(s *Server) {
		s.secret = key
	}
}

//	@title			Falo Iraq
//	@version		1.0
//	@description	Points ledger and redemption service for the Falo Iraq storefront.
//	@host			localhost:8080
//	@BasePath		/

func New(service faloI, options ...Option) (*Server, error) {
	s := &Server{
		log:     zap.NewNop(),
		service: service,
	}

	s.engine = gin.New()
	s.engine.Use(s.Logger())

	apiUser := s.engine.Group("/api/user")
	{
		apiUser.POST("/register", s.handlerRegister)
		apiUser.POST("/login", s.handlerLogin)

		authAPIUser := apiUser.Group("/")
		authAPIUser.Use(s.Authentication())
		{
			authAPIUser.GET("/profile", s.handlerProfile)
			authAPIUser.GET("/services", s.handlerServices)
			authAPIUser.GET("/tasks", s.handlerTasks)
			authAPIUser.POST("/tasks/:id/complete", s.handlerCompleteTask)
			authAPIUser.POST("/gifts/redeem", s.handlerRedeemGift)
			authAPIUser.POST("/transfer", s.handlerTransfer)
			authAPIUser.POST("/orders", s.handlerPlaceOrder)
			authAPIUser.GET("/orders", s.handlerGetUserOrders)
			authAPIUser.GET("/referral", s.handlerReferral)
			authAPIUser.GET("/notifications", s.handlerNotifications)
			authAPIUser.POST("/notifications/:id/read", s.handlerMarkNotificationRead)
			authAPIUser.DELETE("/notifications", s.handlerClearNotifications)
		}
	}

	apiAdmin := s.engine.Group("/api/admin")
	apiAdmin.Use(s.Authentication(), s.AdminOnly())
	{
		apiAdmin.GET("/users", s.handlerAdminUsers)
		apiAdmin.POST("/users/status", s.handlerAdminUserStatus)
		apiAdmin.POST("/users/points", s.handlerAdminUserPoints)
		apiAdmin.GET("/giftcodes", s.handlerAdminListGiftCodes)
		apiAdmin.POST("/giftcodes", s.handlerAdminCreateGiftCode)
		apiAdmin.DELETE("/giftcodes/:id", s.handlerAdminDeleteGiftCode)
		apiAdmin.GET("/orders", s.handlerAdminOrders)
		apiAdmin.PATCH("/orders/:id", s.handlerAdminOrderStatus)
	}

	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	if err := s.engine.Run(s.address); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func (s *Server) checkAuth(c *gin.Context) (userID uint, err error) {
	var ok bool
	var userIDS string
	cookieUserID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return 0, fmt.Errorf("failed reade user cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	userIDS, ok, err = jwtRest.Verify(cookieUserID.Value, cookieKey)
	if err != nil {
		return 0, fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}

	if !ok {
		return 0, fmt.Errorf("unverify usercookie: %w", errUnauthorize)
	}

	userID64, err := strconv.ParseUint(userIDS, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("can't convert string userID to uint: %w", err)
	}

	return uint(userID64), nil
}

func unauthorize(c *gin.Context) {
	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: "",
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)
}

func (s *Server) authorization(c *gin.Context, login, password string) (model.User, error) {
	ctx := c.Request.Context()
	user, err := s.service.Authorization(ctx, login, password)
	if err != nil {
		return user, fmt.Errorf("failed authorization: %w", err)
	}

	jwtRest := jwt.New(s.secret)
	signedCookie, err := jwtRest.Create(cookieKey, strconv.Itoa(int(user.ID)))
	if err != nil {
		return user, fmt.Errorf("can't create cookie data: %w", err)
	}

	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: signedCookie,
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)

	return user, nil
}

func (s *Server) readBody(c *gin.Context) ([]byte, int) {
	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		return []byte{}, http.StatusInternalServerError
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()
	return bBody, 0
}
