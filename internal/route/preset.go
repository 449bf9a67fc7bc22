package route

import (
	"github.com/almrmi/serramenti/internal/controller"
	"github.com/almrmi/serramenti/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Presets(r *gin.RouterGroup, pc *controller.PresetController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/presets")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", pc.ListPresets)
	}
}
