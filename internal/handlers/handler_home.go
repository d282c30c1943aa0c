package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Welcome to the Lava Resto menu API"})
}

// registerHomeRoutes registers the welcome route at the root of the group
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/", getHome)
}
