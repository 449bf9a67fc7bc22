package route

import (
	"github.com/almrmi/serramenti/internal/controller"
	"github.com/almrmi/serramenti/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Projects(r *gin.RouterGroup, pc *controller.ProjectController, fc *controller.FrameController, bc *controller.BuilderController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/projects")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", pc.ListProjects)
		v1.POST("", pc.CreateProject)
		v1.GET("/:projectId", pc.GetProject)
		v1.PATCH("/:projectId", pc.UpdateProject)
		v1.DELETE("/:projectId", pc.DeleteProject)

		v1.GET("/:projectId/builder", bc.GetBuilder)

		v1.POST("/:projectId/frames", fc.CreateFrame)
		v1.PUT("/:projectId/frames/reorder", fc.ReorderFrames)
		v1.PATCH("/:projectId/frames/:frameId", fc.UpdateFrame)
		v1.DELETE("/:projectId/frames/:frameId", fc.DeleteFrame)
		v1.GET("/:projectId/frames/:frameId/schematic", fc.GetFrameSchematic)
	}
}
