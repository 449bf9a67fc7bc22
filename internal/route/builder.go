package route

import (
	"github.com/almrmi/serramenti/internal/controller"
	"github.com/almrmi/serramenti/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Builder(r *gin.RouterGroup, bc *controller.BuilderController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/builder")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", bc.QuickCreate)
	}
}
