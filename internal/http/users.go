package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/openshelf/internal/auth"
	"github.com/openshelf/openshelf/internal/services"
)

// UsersController handles registration, login, and profile management.
type UsersController struct {
	users         *services.UserService
	cookieMaxAge  int
	secureCookies bool
}

func NewUsersController(users *services.UserService, cookieLifetime time.Duration, secureCookies bool) *UsersController {
	return &UsersController{
		users:         users,
		cookieMaxAge:  int(cookieLifetime.Seconds()),
		secureCookies: secureCookies,
	}
}

func (controller *UsersController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := controller.users.Register(in)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	respondCreated(c, user)
}

type loginRequest struct {
	// Identifier may be a username or an email.
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates and sets the session cookie. The token value only
// travels via the cookie, never in the body.
func (controller *UsersController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Username == "" {
		respondBadRequest(c, "username or email is required")
		return
	}

	_, token, err := controller.users.Authenticate(req.Username, req.Password)
	if err != nil {
		respondOperationError(c, err)
		return
	}

	auth.SetSessionCookie(c, token, controller.cookieMaxAge, controller.secureCookies)
	respondSuccess(c, "logged in")
}

func (controller *UsersController) AuthenticatedUser(c *gin.Context) {
	user, err := controller.users.GetAuthenticatedUser(GetUserID(c))
	if err != nil {
		respondOperationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type updateInfoRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (controller *UsersController) UpdateInfo(c *gin.Context) {
	var req updateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := controller.users.UpdateProfile(GetUserID(c), req.Username, req.Email)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "info updated", Data: user})
}

type updatePasswordRequest struct {
	OldPassword          string `json:"old_password"`
	NewPassword          string `json:"new_password"`
	PasswordConfirmation string `json:"confirm_password"`
}

func (controller *UsersController) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	err := controller.users.UpdatePassword(GetUserID(c), req.OldPassword, req.NewPassword, req.PasswordConfirmation)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	respondSuccess(c, "password updated")
}

// Logout clears the session cookie. No store interaction.
func (controller *UsersController) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, controller.secureCookies)
	respondSuccess(c, "logged out")
}
