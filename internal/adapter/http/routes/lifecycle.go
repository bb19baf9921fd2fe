package routes

import (
	"nova_freight/internal/adapter/http/handlers"
	"nova_freight/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathLifecycle = "/lifecycle"
)

func addLifecycleRoutes(rg *gin.RouterGroup, lifecycleHandler *handlers.LifecycleHandler) {
	lifecycle := rg.Group(PathLifecycle)
	lifecycle.Use(middleware.RequireActor())
	{
		lifecycle.GET("/:bidNumber", lifecycleHandler.GetLifecycle)
		lifecycle.POST("/:bidNumber", lifecycleHandler.RecordTransition)
	}
}
