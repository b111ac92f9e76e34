package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/api/middleware"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/api/v1/handlers"
)

// RegisterRoutes registers the Slack routes. Every route requires a valid
// request signature.
func RegisterRoutes(router *gin.RouterGroup, slackHandler *handlers.SlackHandler, signingSecret string) {
	signed := router.Group("", middleware.SlackSignature(signingSecret, slackHandler.Logger()))
	{
		signed.POST("/events", slackHandler.Events)
		signed.POST("/interactions", slackHandler.Interactions)
		signed.POST("/commands", slackHandler.Commands)
	}
}
