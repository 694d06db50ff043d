package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"user-hobbies/internal/guard"
)

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.failList(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getUser(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}

// createUser accepts {name, hobbies}. The hobby list is checked for shape
// only; new users always start without hobbies.
func (h *Handler) createUser(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	if !guard.ValidUser(payload) {
		abortWith(c, errBadRequest)
		return
	}

	user, err := h.users.Create(c.Request.Context(), payload["name"].(string))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) updateUser(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	delete(payload, "id")
	if !guard.ValidUserPatch(payload) {
		abortWith(c, errBadRequest)
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), userPatch(payload))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, http.StatusText(http.StatusOK))
}

func (h *Handler) listUserHobbies(c *gin.Context) {
	hobbies, err := h.users.ListHobbies(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hobbiesToResponse(hobbies))
}
