package route

import (
	"github.com/almrmi/serramenti/internal/controller"
	"github.com/almrmi/serramenti/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Clients(r *gin.RouterGroup, cc *controller.ClientController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/clients")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cc.ListClients)
		v1.POST("", cc.CreateClient)
		v1.PATCH("/:clientId", cc.UpdateClient)
		v1.DELETE("/:clientId", cc.DeleteClient)
	}
}
