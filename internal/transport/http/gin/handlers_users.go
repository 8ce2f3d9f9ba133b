package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirinyoku/parkgo/internal/validation"
)

// @Summary   List users
// @Tags      user
// @Security  Bearer
// @Success   200  {object}  Envelope{body=[]UserResponse}
// @Router    /api/v1/user/ [get]
func (h *handlers) listUsers(c *gin.Context) {
	users, err := h.svcs.Users.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toUserResponses(users))
}

// @Summary   Get user
// @Tags      user
// @Security  Bearer
// @Param     id  path  int  true  "User ID"
// @Success   200  {object}  Envelope{body=UserResponse}
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/user/{id} [get]
func (h *handlers) getUser(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	u, err := h.svcs.Users.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toUserResponse(u))
}

// @Summary   Create user
// @Tags      user
// @Security  Bearer
// @Param     req  body  UserRequest  true  "user"
// @Success   201  {object}  Envelope{body=UserResponse}
// @Failure   400  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/user/ [post]
func (h *handlers) createUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, validation.FromBinding(err))
		return
	}

	u, err := h.svcs.Users.Create(c.Request.Context(), userInput(req))
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, toUserResponse(u))
}

// @Summary   Update user
// @Tags      user
// @Security  Bearer
// @Param     id   path  int          true  "User ID"
// @Param     req  body  UserRequest  true  "user"
// @Success   200  {object}  Envelope{body=UserResponse}
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/user/{id} [put]
func (h *handlers) updateUser(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, validation.FromBinding(err))
		return
	}

	u, err := h.svcs.Users.Update(c.Request.Context(), id, userChanges(req))
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toUserResponse(u))
}

// @Summary   Delete user
// @Tags      user
// @Security  Bearer
// @Param     id  path  int  true  "User ID"
// @Success   200  {object}  Envelope{body=string}
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/user/{id} [delete]
func (h *handlers) deleteUser(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	if err := h.svcs.Users.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "User deleted successfully")
}
