package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/faloiraq/falo/internal/adapters/store/errstore"
	"github.com/faloiraq/falo/internal/core/falo"
)

var (
	msgErrorCloseBody = "failed close body request"
)

//	@Summary	Register user
//	@Schemes
//	@Description	registration user
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			registration	body	tRegistration	true	"registration"
//	@Success		200				{object}	tProfile	"user registered and authenticated"
//	@failure		400				"invalid request format"
//	@failure		409				"username or email already taken"
//	@failure		500				"internal server error"
//	@Router			/api/user/register [post]
func (s *Server) handlerRegister(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, code := s.readBody(c)
	if code != 0 {
		c.Writer.WriteHeader(code)
		return
	}

	jBody := tRegistration{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err := s.service.Register(ctx, falo.RegistrationInput{
		Name:         jBody.Name,
		Username:     jBody.Username,
		Email:        jBody.Email,
		Password:     jBody.Password,
		ReferralCode: jBody.ReferralCode,
	})
	if err != nil {
		if errors.Is(err, errstore.ErrLoginNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, falo.ErrLoginNotValid) || errors.Is(err, falo.ErrPasswordNotValid) ||
			errors.Is(err, falo.ErrEmailNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed register user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	user, err := s.authorization(c, jBody.Username, jBody.Password)
	if err != nil {
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, newProfile(user))
}

//	@Summary	Login user
//	@Schemes
//	@Description	authorization by username or email
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			auth	body	tAuthorization	true	"auth"
//	@Success		200		{object}	tProfile	"user authenticated"
//	@failure		400		"invalid request format"
//	@failure		401		"wrong login/password pair"
//	@failure		403		"account banned or locked"
//	@failure		500		"internal server error"
//	@Router			/api/user/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	unauthorize(c)

	bBody, code := s.readBody(c)
	if code != 0 {
		c.Writer.WriteHeader(code)
		return
	}

	jBody := tAuthorization{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := s.authorization(c, jBody.Login, jBody.Password)
	if err != nil {
		if errors.Is(err, falo.ErrLoginNotValid) || errors.Is(err, falo.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, falo.ErrPasswordNotEquale) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		if errors.Is(err, falo.ErrUserBanned) || errors.Is(err, falo.ErrUserCompromised) {
			c.JSON(http.StatusForbidden, gin.H{"support": s.service.SupportContact()})
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, newProfile(user))
}

//	@Summary	User profile
//	@Schemes
//	@Description	get current user profile with balance
//	@Tags			user
//	@Produce		json
//	@Success		200	{object}	tProfile	"profile"
//	@failure		401	"user not authorized"
//	@failure		403	"account banned or locked"
//	@failure		500	"internal server error"
//	@Router			/api/user/profile [get]
func (s *Server) handlerProfile(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := s.service.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, falo.ErrUserBanned) || errors.Is(err, falo.ErrUserCompromised) {
			c.JSON(http.StatusForbidden, gin.H{"support": s.service.SupportContact()})
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("failed getting profile", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, newProfile(user))
}

//	@Summary	Service catalog
//	@Schemes
//	@Description	list orderable services
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	tService	"services"
//	@failure		401	"user not authorized"
//	@failure		500	"internal server error"
//	@Router			/api/user/services [get]
func (s *Server) handlerServices(c *gin.Context) {
	ctx := c.Request.Context()

	services, err := s.service.Services(ctx)
	if err != nil {
		s.log.Error("failed getting services", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tService{}
	for _, service := range services {
		response = append(response, tService{
			ID:           service.ID,
			Name:         service.Name,
			Platform:     service.Platform,
			Icon:         service.Icon,
			PricePerUnit: service.PricePerUnit,
			MinAmount:    service.MinAmount,
		})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Task catalog
//	@Schemes
//	@Description	list earn tasks with per-user completion marks
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	tTask	"tasks"
//	@failure		401	"user not authorized"
//	@failure		500	"internal server error"
//	@Router			/api/user/tasks [get]
func (s *Server) handlerTasks(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	tasks, completed, err := s.service.Tasks(ctx, userID)
	if err != nil {
		s.log.Error("failed getting tasks", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tTask{}
	for _, task := range tasks {
		response = append(response, tTask{
			ID:          task.ID,
			Platform:    task.Platform,
			Type:        task.Type,
			Description: task.Description,
			Link:        task.Link,
			Reward:      task.Reward,
			Completed:   completed[task.ID],
		})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Complete task
//	@Schemes
//	@Description	credit the task reward to the current user
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path	integer	true	"task id"
//	@Success		200	{object}	tProfile	"updated profile"
//	@failure		400	"invalid task id"
//	@failure		401	"user not authorized"
//	@failure		403	"account locked for abuse"
//	@failure		404	"task not found"
//	@failure		409	"task already completed"
//	@failure		500	"internal server error"
//	@Router			/api/user/tasks/{id}/complete [post]
func (s *Server) handlerCompleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := s.service.CompleteTask(ctx, userID, uint(taskID))
	if err != nil {
		if errors.Is(err, falo.ErrUserCompromised) {
			c.JSON(http.StatusForbidden, gin.H{"support": s.service.SupportContact()})
			return
		}
		if errors.Is(err, falo.ErrTaskCompleted) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		s.log.Error("failed complete task", zap.Uint64("taskID", taskID), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, newProfile(user))
}

//	@Summary	Redeem gift code
//	@Schemes
//	@Description	redeem a gift code and credit its reward
//	@Tags			gift
//	@Accept			json
//	@Produce		json
//	@Param			redeem	body	tRedeem	true	"redeem"
//	@Success		200	{object}	tProfile	"updated profile"
//	@failure		400	"invalid request format"
//	@failure		401	"user not authorized"
//	@failure		404	"code not found"
//	@failure		409	"code already used"
//	@failure		410	"code expired"
//	@failure		500	"internal server error"
//	@Router			/api/user/gifts/redeem [post]
func (s *Server) handlerRedeemGift(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, code := s.readBody(c)
	if code != 0 {
		c.Writer.WriteHeader(code)
		return
	}

	jBody := tRedeem{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	gift, user, err := s.service.RedeemGift(ctx, userID, jBody.Code)
	if err != nil {
		if errors.Is(err, falo.ErrCodeNotFound) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, falo.ErrCodeExpired) {
			c.Writer.WriteHeader(http.StatusGone)
			return
		}
		if errors.Is(err, falo.ErrCodeAlreadyUsed) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		s.log.Error("failed redeem gift code", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reward":  gift.Reward,
		"profile": newProfile(user),
	})
}

//	@Summary	Transfer points
//	@Schemes
//	@Description	send points to another user, a fixed fee is charged on top
//	@Tags			transfer
//	@Accept			json
//	@Produce		json
//	@Param			transfer	body	tTransfer	true	"transfer"
//	@Success		200	{object}	tProfile	"updated sender profile"
//	@failure		400	"invalid amount"
//	@failure		401	"user not authorized"
//	@failure		402	"not enough points"
//	@failure		404	"recipient not found"
//	@failure		409	"transfer to own account"
//	@failure		500	"internal server error"
//	@Router			/api/user/transfer [post]
func (s *Server) handlerTransfer(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, code := s.readBody(c)
	if code != 0 {
		c.Writer.WriteHeader(code)
		return
	}

	jBody := tTransfer{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := s.service.Transfer(ctx, userID, jBody.Username, jBody.Amount)
	if err != nil {
		if errors.Is(err, falo.ErrAmountNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, falo.ErrInsufficientBalance) || errors.Is(err, errstore.ErrBalanceNotEnough) {
			c.Writer.WriteHeader(http.StatusPaymentRequired)
			return
		}
		if errors.Is(err, falo.ErrRecipientNotFound) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, falo.ErrSelfTransfer) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		s.log.Error("failed transfer points", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, newProfile(user))
}

//	@Summary	Place order
//	@Schemes
//	@Description	place a service order, the cost is debited immediately
//	@Tags			order
//	@Accept			json
//	@Produce		json
//	@Param			order	body	tPlaceOrder	true	"order"
//	@Success		200	{object}	tOrderByUser	"created order"
//	@failure		401	"user not authorized"
//	@failure		402	"not enough points"
//	@failure		404	"service not found"
//	@failure		422	"amount below the service minimum"
//	@failure		500	"internal server error"
//	@Router			/api/user/orders [post]
func (s *Server) handlerPlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, code := s.readBody(c)
	if code != 0 {
		c.Writer.WriteHeader(code)
		return
	}

	jBody := tPlaceOrder{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := s.service.PlaceOrder(ctx, userID, jBody.ServiceID, jBody.TargetUsername, jBody.Amount)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, falo.ErrAmountNotValid) || errors.Is(err, falo.ErrAmountBelowMinimum) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, falo.ErrServiceUnaffordable) || errors.Is(err, errstore.ErrBalanceNotEnough) {
			c.Writer.WriteHeader(http.StatusPaymentRequired)
			return
		}
		s.log.Error("failed place order", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	resOrder := tOrderByUser{
		ID:             order.ID,
		ServiceName:    order.ServiceName,
		TargetUsername: order.TargetUsername,
		Status:         order.Status,
		Amount:         order.Amount,
		TotalCost:      order.TotalCost,
		createdAt:      order.CreatedAt,
	}
	c.JSON(http.StatusOK, *resOrder.Prepare())
}

//	@Summary	List user orders
//	@Schemes
//	@Description	get orders placed by the current user, newest first
//	@Tags			order
//	@Produce		json
//	@Success		200	{array}	tOrderByUser	"orders"
//	@Success		204	"no orders"
//	@failure		401	"user not authorized"
//	@failure		500	"internal server error"
//	@Router			/api/user/orders [get]
func (s *Server) handlerGetUserOrders(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orders, err := s.service.GetUserOrders(ctx, userID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		s.log.Error("failed get orders by user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tOrderByUser{}
	for _, order := range orders {
		resOrder := tOrderByUser{
			ID:             order.ID,
			ServiceName:    order.ServiceName,
			TargetUsername: order.TargetUsername,
			Status:         order.Status,
			Amount:         order.Amount,
			TotalCost:      order.TotalCost,
			createdAt:      order.CreatedAt,
		}
		resOrder.Prepare()
		response = append(response, resOrder)
	}
	sort.Slice(response, func(i, j int) bool {
		return response[i].createdAt.Sub(response[j].createdAt) > 0
	})
	c.JSON(http.StatusOK, response)
}

//	@Summary	Referral info
//	@Schemes
//	@Description	get the referral code and counter of the current user
//	@Tags			user
//	@Produce		json
//	@Success		200	{object}	tReferral	"referral info"
//	@failure		401	"user not authorized"
//	@failure		500	"internal server error"
//	@Router			/api/user/referral [get]
func (s *Server) handlerReferral(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := s.service.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, falo.ErrUserBanned) || errors.Is(err, falo.ErrUserCompromised) {
			c.JSON(http.StatusForbidden, gin.H{"support": s.service.SupportContact()})
			return
		}
		s.log.Error("failed getting referral info", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, tReferral{
		ReferralCode:  user.ReferralCode,
		ReferredBy:    user.ReferredBy,
		ReferralCount: user.ReferralCount,
	})
}

//	@Summary	List notifications
//	@Schemes
//	@Description	get notifications of the current user, newest first
//	@Tags			notification
//	@Produce		json
//	@Success		200	{array}	tNotification	"notifications"
//	@failure		401	"user not authorized"
//	@failure		500	"internal server error"
//	@Router			/api/user/notifications [get]
func (s *Server) handlerNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	notifs, err := s.service.Notifications(ctx, userID)
	if err != nil {
		s.log.Error("failed getting notifications", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tNotification{}
	for _, notif := range notifs {
		resNotif := tNotification{
			ID:        notif.ID,
			Title:     notif.Title,
			Message:   notif.Message,
			Type:      notif.Type,
			Read:      notif.Read,
			createdAt: notif.CreatedAt,
		}
		resNotif.Prepare()
		response = append(response, resNotif)
	}
	sort.Slice(response, func(i, j int) bool {
		return response[i].createdAt.Sub(response[j].createdAt) > 0
	})
	c.JSON(http.StatusOK, response)
}

//	@Summary	Mark notification read
//	@Schemes
//	@Description	mark one notification of the current user as read
//	@Tags			notification
//	@Produce		plain
//	@Param			id	path	integer	true	"notification id"
//	@Success		200	"marked"
//	@failure		400	"invalid notification id"
//	@failure		401	"user not authorized"
//	@failure		404	"notification not found"
//	@failure		500	"internal server error"
//	@Router			/api/user/notifications/{id}/read [post]
func (s *Server) handlerMarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	notifID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.MarkNotificationRead(ctx, userID, uint(notifID)); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		s.log.Error("failed mark notification read", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Clear notifications
//	@Schemes
//	@Description	delete all notifications of the current user
//	@Tags			notification
//	@Produce		plain
//	@Success		200	"cleared"
//	@failure		401	"user not authorized"
//	@failure		500	"internal server error"
//	@Router			/api/user/notifications [delete]
func (s *Server) handlerClearNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := s.service.ClearNotifications(ctx, userID); err != nil {
		s.log.Error("failed clear notifications", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}
