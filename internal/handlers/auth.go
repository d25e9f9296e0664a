package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmstand/internal/models"
)

// UserStore is the slice of user persistence the auth handlers need.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	ByPhone(ctx context.Context, phone string) (*models.User, error)
	PhoneTaken(ctx context.Context, phone string) (bool, error)
}

type AuthHandler struct {
	users  UserStore
	logger *zap.Logger
}

func NewAuthHandler(users UserStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

func (h *AuthHandler) Register(c *gin.Context) {
	phone := strings.TrimSpace(c.PostForm("phone"))
	name := strings.TrimSpace(c.PostForm("name"))
	pw := c.PostForm("password")
	if phone == "" || name == "" || pw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fill all fields"})
		return
	}

	taken, err := h.users.PhoneTaken(c.Request.Context(), phone)
	if err != nil {
		h.logger.Error("checking phone", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone already registered"})
		return
	}

	hash, err := models.HashPassword(pw)
	if err != nil {
		h.logger.Error("hashing password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	u := models.User{Phone: phone, Name: name, PasswordHash: hash}
	if err := h.users.Create(c.Request.Context(), &u); err != nil {
		h.logger.Error("creating user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionPhoneKey, u.Phone)
	_ = sess.Save()
	c.JSON(http.StatusCreated, u)
}

func (h *AuthHandler) Login(c *gin.Context) {
	phone := strings.TrimSpace(c.PostForm("phone"))
	pw := c.PostForm("password")
	if phone == "" || pw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fill all fields"})
		return
	}

	u, err := h.users.ByPhone(c.Request.Context(), phone)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	if !models.CheckPassword(u.PasswordHash, pw) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong password"})
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionPhoneKey, u.Phone)
	_ = sess.Save()
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Status(http.StatusNoContent)
}
