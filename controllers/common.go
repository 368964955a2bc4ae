package controllers

import (
	"net/http"

	"studiopro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathUUID parses a uuid path parameter, responding 400 itself on bad input.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
