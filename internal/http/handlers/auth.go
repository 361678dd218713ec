package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"skyroute/internal/http/middleware"
	"skyroute/internal/utils"
)

type loginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login sets the local session. There are no credentials to verify; the
// token only gates the booking flow.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	state, err := h.Auth.Login(req.Name, req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	claims := middleware.SessionClaims{
		Name:  state.User.Name,
		Email: state.User.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.Env.SessionSecret))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create session token", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user="+state.User.Email)
	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"auth":  state,
	})
}

// Logout clears the session and removes the persisted record.
func (h *Handlers) Logout(c *gin.Context) {
	h.Auth.Logout()
	utils.LogEvent(middleware.GetRequestID(c), "auth", "logout", "session cleared")
	c.JSON(http.StatusOK, gin.H{"auth": h.Auth.State()})
}

// Session returns the current auth state for rehydrating clients.
func (h *Handlers) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"auth": h.Auth.State()})
}
