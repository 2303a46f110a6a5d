package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventhub/internal/helpers"
	"github.com/farellandr/eventhub/internal/metrics"
	"github.com/farellandr/eventhub/internal/middleware"
	"github.com/farellandr/eventhub/internal/session"
)

type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if err := session.ValidateRegistration(req.Password, req.ConfirmPassword); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, session.Message(err))
		return
	}

	deps := middleware.GetDeps(c)
	if deps == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Session manager not found.")
		return
	}

	sess := deps.Sessions.New()
	if err := sess.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "failure").Inc()
		if errors.Is(err, session.ErrUserExists) {
			helpers.RespondWithError(c, http.StatusConflict, sess.Err())
			return
		}
		slog.Error("registration failed", "email", req.Email, "error", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, sess.Err())
		return
	}
	metrics.AuthAttempts.WithLabelValues("register", "success").Inc()

	respondWithSession(c, http.StatusCreated, sess, "User registered successfully.")
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	deps := middleware.GetDeps(c)
	if deps == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Session manager not found.")
		return
	}

	sess := deps.Sessions.New()
	if err := sess.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
		if errors.Is(err, session.ErrInvalidCredentials) {
			helpers.RespondWithError(c, http.StatusUnauthorized, sess.Err())
			return
		}
		slog.Error("login failed", "email", req.Email, "error", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, sess.Err())
		return
	}
	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()

	respondWithSession(c, http.StatusOK, sess, "Logged in successfully.")
}

func respondWithSession(c *gin.Context, status int, sess *session.Store, message string) {
	deps := middleware.GetDeps(c)
	user := sess.User()

	token, err := session.IssueToken(deps.JWTSecret, sess.ID(), *user, deps.JWTExpire)
	if err != nil {
		slog.Error("can't issue token", "error", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(status, gin.H{
		"message": message,
		"token":   token,
		"user":    user,
	})
}

func Logout(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}

	sess.Logout(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}
