package api

import (
	"errors"
	"net/http"

	domuser "stayspots/internal/domain/user"
	reqdto "stayspots/internal/handler/dto/request"
	resdto "stayspots/internal/handler/dto/response"
	"stayspots/internal/handler/httperr"
	"stayspots/internal/handler/middleware"
	"stayspots/internal/infra"
	"stayspots/internal/pkg/config"
	"stayspots/internal/pkg/cookie"
	"stayspots/internal/pkg/jwt"
	"stayspots/internal/usecase/commands"
	"stayspots/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds   commands.AuthCommands
	users  queries.UserQueries
	tokens *jwt.Service
	cfg    config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, tokens *jwt.Service, cfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{cmds: cmds, users: users, tokens: tokens, cfg: cfg}
}

// @Summary Sign up
// @Description Register a new user and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign up request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req reqdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SignUp(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "User with that email already exists", nil)
		case errors.Is(err, commands.ErrUsernameTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "User with that username already exists", nil)
		case errors.Is(err, domuser.ErrInvalidEmail),
			errors.Is(err, domuser.ErrInvalidUsername),
			errors.Is(err, domuser.ErrPasswordTooWeak),
			errors.Is(err, domuser.ErrMissingName):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cfg, result.Token, h.tokens.TokenDuration())
	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary Log in
// @Description Log in with email or username plus password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToParams())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetSessionCookie(c, h.cfg, result.Token, h.tokens.TokenDuration())
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Log out
// @Description Clear the session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Get the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("not authenticated"), "Unauthorized", nil)
		return
	}

	view, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
