package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lamdh/gradeview/internal/dto"
	"github.com/lamdh/gradeview/internal/gateway"
	"github.com/lamdh/gradeview/internal/model"
	"github.com/lamdh/gradeview/internal/service"
	"github.com/lamdh/gradeview/internal/session"
)

type AuthController struct {
	authService service.AuthService
	sess        *session.Store
}

func NewAuthController(authService service.AuthService, sess *session.Store) *AuthController {
	return &AuthController{authService: authService, sess: sess}
}

// Login godoc
// @Summary Log in and establish the dashboard session
// @Description Exchanges credentials for a token and identity, then persists both.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} gateway.Result[dto.Credentials]
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} gateway.Result[dto.Credentials] "Invalid credentials"
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind LoginRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	res := ctrl.authService.Login(req.Email, req.Password)
	if !res.Success {
		c.JSON(http.StatusUnauthorized, res)
		return
	}

	if err := ctrl.sess.Establish(res.Data.User, res.Data.Token); err != nil {
		log.Error().Err(err).Msg("Failed to persist session")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to establish session"})
		return
	}
	log.Info().Str("email", res.Data.User.Email).Str("role", string(res.Data.User.Role)).Msg("Session established")
	c.JSON(http.StatusOK, res)
}

// Logout godoc
// @Summary Log out
// @Description Clears the persisted session; the backend is notified best-effort.
// @Tags auth
// @Produce json
// @Success 200 {object} gateway.Result[map[string]bool]
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.authService.Logout()
	c.JSON(http.StatusOK, gateway.OK(map[string]bool{"loggedOut": true}))
}

// Me godoc
// @Summary Current session identity
// @Tags auth
// @Produce json
// @Success 200 {object} gateway.Result[model.User]
// @Failure 401 {object} gateway.Result[model.User] "Not logged in"
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	user, found := ctrl.sess.User()
	if !found {
		c.JSON(http.StatusUnauthorized, gateway.Fail[model.User]("Not logged in"))
		return
	}
	c.JSON(http.StatusOK, gateway.OK(user))
}
