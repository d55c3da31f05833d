package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/faloiraq/falo/internal/adapters/store/model"
)

func (s *Server) Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := s.checkAuth(c)
		if err != nil {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			c.Abort()
		}

		c.Next()
	}
}

func (s *Server) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := s.checkAuth(c)
		if err != nil {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			c.Abort()
			return
		}

		user, err := s.service.Profile(c.Request.Context(), userID)
		if err != nil {
			c.Writer.WriteHeader(http.StatusForbidden)
			c.Abort()
			return
		}
		if user.Role != model.RoleAdmin {
			c.Writer.WriteHeader(http.StatusForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (s *Server) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info(
			"Request",
			zap.String("uri", c.Request.RequestURI),
			zap.Duration("duration", time.Since(start)),
			zap.String("method", c.Request.Method),
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
		)
	}
}
