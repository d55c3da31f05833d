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

//	@Summary	List users
//	@Schemes
//	@Description	list all registered users
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}	tProfile	"users"
//	@failure		401	"user not authorized"
//	@failure		403	"not an administrator"
//	@failure		500	"internal server error"
//	@Router			/api/admin/users [get]
func (s *Server) handlerAdminUsers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := s.service.ListUsers(ctx)
	if err != nil {
		s.log.Error("failed getting users", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tProfile{}
	for _, user := range users {
		response = append(response, newProfile(*user))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Set user status
//	@Schemes
//	@Description	ban, unban or lock a user account
//	@Tags			admin
//	@Accept			json
//	@Produce		plain
//	@Param			status	body	tUserStatus	true	"status"
//	@Success		200	"status updated"
//	@failure		400	"invalid status value"
//	@failure		401	"user not authorized"
//	@failure		403	"not an administrator"
//	@failure		404	"user not found"
//	@failure		500	"internal server error"
//	@Router			/api/admin/users/status [post]
func (s *Server) handlerAdminUserStatus(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, code := s.readBody(c)
	if code != 0 {
		c.Writer.WriteHeader(code)
		return
	}

	jBody := tUserStatus{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.SetUserStatus(ctx, jBody.UserID, jBody.Status); err != nil {
		if errors.Is(err, falo.ErrStatusNotAllowed) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		s.log.Error("failed set user status", zap.Uint("userID", jBody.UserID), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Set user points
//	@Schemes
//	@Description	adjust or replace a user balance, the result never drops below zero
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			points	body	tUserPoints	true	"points"
//	@Success		200	{object}	tProfile	"updated profile"
//	@failure		401	"user not authorized"
//	@failure		403	"not an administrator"
//	@failure		404	"user not found"
//	@failure		500	"internal server error"
//	@Router			/api/admin/users/points [post]
func (s *Server) handlerAdminUserPoints(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, code := s.readBody(c)
	if code != 0 {
		c.Writer.WriteHeader(code)
		return
	}

	jBody := tUserPoints{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := s.service.SetUserPoints(ctx, jBody.Login, jBody.Amount, jBody.Relative)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		s.log.Error("failed set user points", zap.String("login", jBody.Login), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, newProfile(user))
}

//	@Summary	List gift codes
//	@Schemes
//	@Description	list all gift codes
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}	tGiftCode	"gift codes"
//	@failure		401	"user not authorized"
//	@failure		403	"not an administrator"
//	@failure		500	"internal server error"
//	@Router			/api/admin/giftcodes [get]
func (s *Server) handlerAdminListGiftCodes(c *gin.Context) {
	ctx := c.Request.Context()

	gifts, err := s.service.ListGiftCodes(ctx)
	if err != nil {
		s.log.Error("failed getting gift codes", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tGiftCode{}
	for _, gift := range gifts {
		resGift := tGiftCode{
			ID:        gift.ID,
			Code:      gift.Code,
			Reward:    gift.Reward,
			expiresAt: gift.ExpiresAt,
		}
		response = append(response, *resGift.Prepare())
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Create gift code
//	@Schemes
//	@Description	create a gift code with reward and expiry
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			gift	body	tCreateGiftCode	true	"gift"
//	@Success		200	{object}	tGiftCode	"created gift code"
//	@failure		400	"invalid reward or expiry"
//	@failure		401	"user not authorized"
//	@failure		403	"not an administrator"
//	@failure		409	"code already exists"
//	@failure		500	"internal server error"
//	@Router			/api/admin/giftcodes [post]
func (s *Server) handlerAdminCreateGiftCode(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, code := s.readBody(c)
	if code != 0 {
		c.Writer.WriteHeader(code)
		return
	}

	jBody := tCreateGiftCode{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	gift, err := s.service.CreateGiftCode(ctx, jBody.Code, jBody.Reward, jBody.ExpiresAt)
	if err != nil {
		if errors.Is(err, falo.ErrAmountNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrGiftCodeNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		s.log.Error("failed create gift code", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	resGift := tGiftCode{
		ID:        gift.ID,
		Code:      gift.Code,
		Reward:    gift.Reward,
		expiresAt: gift.ExpiresAt,
	}
	c.JSON(http.StatusOK, *resGift.Prepare())
}

//	@Summary	Delete gift code
//	@Schemes
//	@Description	delete a gift code
//	@Tags			admin
//	@Produce		plain
//	@Param			id	path	integer	true	"gift code id"
//	@Success		200	"deleted"
//	@failure		400	"invalid gift code id"
//	@failure		401	"user not authorized"
//	@failure		403	"not an administrator"
//	@failure		404	"gift code not found"
//	@failure		500	"internal server error"
//	@Router			/api/admin/giftcodes/{id} [delete]
func (s *Server) handlerAdminDeleteGiftCode(c *gin.Context) {
	ctx := c.Request.Context()

	giftID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.DeleteGiftCode(ctx, uint(giftID)); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		s.log.Error("failed delete gift code", zap.Uint64("giftID", giftID), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	List orders
//	@Schemes
//	@Description	list all orders, newest first
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}	tOrderByUser	"orders"
//	@failure		401	"user not authorized"
//	@failure		403	"not an administrator"
//	@failure		500	"internal server error"
//	@Router			/api/admin/orders [get]
func (s *Server) handlerAdminOrders(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := s.service.ListOrders(ctx)
	if err != nil {
		s.log.Error("failed getting orders", zap.Error(err))
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

//	@Summary	Update order status
//	@Schemes
//	@Description	move an order through its processing lifecycle
//	@Tags			admin
//	@Accept			json
//	@Produce		plain
//	@Param			id		path	integer			true	"order id"
//	@Param			status	body	tOrderStatus	true	"status"
//	@Success		200	"status updated"
//	@failure		400	"invalid order id"
//	@failure		401	"user not authorized"
//	@failure		403	"not an administrator"
//	@failure		404	"order not found"
//	@failure		409	"transition not allowed"
//	@failure		500	"internal server error"
//	@Router			/api/admin/orders/{id} [patch]
func (s *Server) handlerAdminOrderStatus(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, code := s.readBody(c)
	if code != 0 {
		c.Writer.WriteHeader(code)
		return
	}

	jBody := tOrderStatus{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.UpdateOrderStatus(ctx, uint(orderID), jBody.Status); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, falo.ErrStatusNotAllowed) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		s.log.Error("failed update order status", zap.Uint64("orderID", orderID), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}
