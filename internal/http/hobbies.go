package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/guard"
)

func (h *Handler) listHobbies(c *gin.Context) {
	hobbies, err := h.hobbies.List(c.Request.Context())
	if err != nil {
		h.failList(c, err)
		return
	}
	c.JSON(http.StatusOK, hobbiesToResponse(hobbies))
}

func (h *Handler) getHobby(c *gin.Context) {
	hobby, err := h.hobbies.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hobbyToResponse(*hobby))
}

// createHobby accepts {name, passionLevel, year, userId}. passionLevel may be
// the ordinal or its symbol; it is stored as the ordinal.
func (h *Handler) createHobby(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	if !guard.ValidHobby(payload) {
		abortWith(c, errBadRequest)
		return
	}
	ownerID, ok := payload["userId"].(string)
	if !ok || ownerID == "" {
		abortWith(c, errBadRequest)
		return
	}

	level, err := domain.NormalizePassionLevel(payload["passionLevel"])
	if err != nil {
		abortWith(c, errBadRequest)
		return
	}
	hobby, err := h.hobbies.Create(c.Request.Context(), ownerID, domain.Hobby{
		Name:         payload["name"].(string),
		PassionLevel: level,
		Year:         integer(payload["year"]),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hobbyToResponse(*hobby))
}

func (h *Handler) updateHobby(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	delete(payload, "id")
	if !guard.ValidHobbyPatch(payload) {
		abortWith(c, errBadRequest)
		return
	}

	patch, err := hobbyPatch(payload)
	if err != nil {
		abortWith(c, errBadRequest)
		return
	}
	hobby, err := h.hobbies.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hobbyToResponse(*hobby))
}

func (h *Handler) deleteHobby(c *gin.Context) {
	if err := h.hobbies.Delete(c.Request.Context(), c.Param("userId"), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, http.StatusText(http.StatusOK))
}
