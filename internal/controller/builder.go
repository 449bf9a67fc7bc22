package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/internal/model"
	"github.com/almrmi/serramenti/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BuilderController struct {
	*baseController
}

// GetBuilder loads everything the builder canvas needs in one call: the
// project with its client and position-ordered frames, plus the preset
// palette grouped by category.
func (bc BuilderController) GetBuilder(ctx *gin.Context) {
	user, _, err := bc.getOwnedProject(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := bc.app.Repository.Project.GetWithFrames(ctx, nil, ctx.Param("projectId"), user.ID)
	if err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load builder", util.GenerateErrorMessages(err), nil)
		return
	}

	presets, err := bc.app.Repository.FramePreset.ListActive(ctx, nil)
	if err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load builder", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
		"presets": presets,
	})
}

// QuickCreate opens the builder without the project form: it creates an
// empty draft named after the current timestamp and hands back its id so the
// caller can navigate straight to the canvas.
func (bc BuilderController) QuickCreate(ctx *gin.Context) {
	user, err := bc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	project := model.Project{
		Name:   fmt.Sprintf("Nuovo Progetto %s", time.Now().Format("02/01/2006 15:04")),
		Status: constant.ProjectStatusDraft,
		UserID: user.ID,
	}

	created, err := bc.app.Repository.Project.Create(ctx, nil, &project)
	if err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": created,
	})
}
