package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirinyoku/parkgo/internal/validation"
)

// @Summary  Register a user
// @Tags     auth
// @Param    req  body  RegisterRequest  true  "new user"
// @Success  201  {object}  Envelope{body=AuthResponse}
// @Failure  400  {object}  Envelope{body=ErrorBody}  "validation failed / email taken"
// @Router   /api/v1/auth/register [post]
func (h *handlers) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, validation.FromBinding(err))
		return
	}

	sess, err := h.svcs.Auth.Register(c.Request.Context(), registerInput(req))
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, toAuthResponse(sess))
}

// @Summary  Authenticate
// @Tags     auth
// @Param    req  body  AuthenticateRequest  true  "credentials"
// @Success  200  {object}  Envelope{body=AuthResponse}
// @Failure  401  {object}  Envelope{body=ErrorBody}
// @Failure  429  {object}  Envelope{body=ErrorBody}  "rate limited"
// @Router   /api/v1/auth/authenticate [post]
func (h *handlers) authenticate(c *gin.Context) {
	var req AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, validation.FromBinding(err))
		return
	}

	sess, err := h.svcs.Auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toAuthResponse(sess))
}
