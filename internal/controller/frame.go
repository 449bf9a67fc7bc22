package controller

import (
	"errors"
	"net/http"

	"github.com/almrmi/serramenti/internal/model"
	"github.com/almrmi/serramenti/internal/repository"
	"github.com/almrmi/serramenti/internal/util"
	"github.com/almrmi/serramenti/pkg/frame"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FrameController struct {
	*baseController
}

// respondProjectError maps the ownership helper's failure modes for frame
// routes: a missing or foreign project is a 404, everything else is an auth
// problem.
func (fc FrameController) respondProjectError(ctx *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
}

// respondFrameError translates repository errors for a single-frame
// operation into the API's status codes.
func (fc FrameController) respondFrameError(ctx *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.ResponseFailed(ctx, http.StatusNotFound, "Frame not found", util.GenerateErrorMessages(err), nil)
	case errors.Is(err, repository.ErrFrameNotInProject):
		util.ResponseFailed(ctx, http.StatusForbidden, "Frame does not belong to this project", util.GenerateErrorMessages(err), nil)
	case errors.Is(err, repository.ErrPositionConflict):
		util.ResponseFailed(ctx, http.StatusConflict, "Frame position conflict", util.GenerateErrorMessages(err), nil)
	default:
		var ve *frame.ValidationError
		if errors.As(err, &ve) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid frame dimensions", util.GenerateErrorMessages(err, ve.Field), nil)
			return
		}
		fc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to "+action, util.GenerateErrorMessages(err), nil)
	}
}

type createFrameRequest struct {
	FrameType     string         `json:"frameType" form:"frameType" binding:"required,strNotEmpty,cmax=50"`
	OpeningType   *string        `json:"openingType" form:"openingType"`
	Width         *int           `json:"width" form:"width"`
	Height        *int           `json:"height" form:"height"`
	Configuration datatypes.JSON `json:"configuration" form:"configuration"`
}

func (fc FrameController) CreateFrame(ctx *gin.Context) {
	_, project, err := fc.getOwnedProject(ctx)
	if err != nil {
		fc.respondProjectError(ctx, err)
		return
	}

	var body createFrameRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	f := model.Frame{
		ProjectID:     project.ID,
		FrameType:     body.FrameType,
		OpeningType:   body.OpeningType,
		Width:         body.Width,
		Height:        body.Height,
		Configuration: body.Configuration,
	}

	created, err := fc.app.Repository.Frame.Create(ctx, nil, &f)
	if err != nil {
		fc.respondFrameError(ctx, "create frame", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"frame": created,
	})
}

type updateFrameRequest struct {
	FrameType     *string        `json:"frameType" form:"frameType"`
	OpeningType   *string        `json:"openingType" form:"openingType"`
	Width         *int           `json:"width" form:"width"`
	Height        *int           `json:"height" form:"height"`
	PositionOrder *int           `json:"positionOrder" form:"positionOrder"`
	Configuration datatypes.JSON `json:"configuration" form:"configuration"`
}

func (fc FrameController) UpdateFrame(ctx *gin.Context) {
	_, project, err := fc.getOwnedProject(ctx)
	if err != nil {
		fc.respondProjectError(ctx, err)
		return
	}

	var body updateFrameRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	frameId := ctx.Param("frameId")
	updated, err := fc.app.Repository.Frame.Update(ctx, nil, project.ID, frameId, repository.FrameUpdate{
		FrameType:     body.FrameType,
		OpeningType:   body.OpeningType,
		Width:         body.Width,
		Height:        body.Height,
		PositionOrder: body.PositionOrder,
		Configuration: body.Configuration,
	})
	if err != nil {
		fc.respondFrameError(ctx, "update frame", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"frame": updated,
	})
}

func (fc FrameController) DeleteFrame(ctx *gin.Context) {
	_, project, err := fc.getOwnedProject(ctx)
	if err != nil {
		fc.respondProjectError(ctx, err)
		return
	}

	frameId := ctx.Param("frameId")
	if err := fc.app.Repository.Frame.Delete(ctx, nil, project.ID, frameId); err != nil {
		fc.respondFrameError(ctx, "delete frame", err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

type reorderFramesRequest struct {
	FrameIDs []string `json:"frameIds" form:"frameIds" binding:"required,min=1"`
}

func (fc FrameController) ReorderFrames(ctx *gin.Context) {
	_, project, err := fc.getOwnedProject(ctx)
	if err != nil {
		fc.respondProjectError(ctx, err)
		return
	}

	var body reorderFramesRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := fc.app.Repository.Frame.Reorder(ctx, nil, project.ID, body.FrameIDs); err != nil {
		if errors.Is(err, repository.ErrReorderSetMismatch) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Reorder list does not match the project's frames", util.GenerateErrorMessages(err, "frameIds"), nil)
			return
		}
		fc.respondFrameError(ctx, "reorder frames", err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// GetFrameSchematic renders the frame as an SVG document. Frames created
// without dimensions fall back to the preset's defaults so the builder can
// always show something.
func (fc FrameController) GetFrameSchematic(ctx *gin.Context) {
	_, project, err := fc.getOwnedProject(ctx)
	if err != nil {
		fc.respondProjectError(ctx, err)
		return
	}

	frameId := ctx.Param("frameId")
	f, err := fc.app.Repository.Frame.GetByIDInProject(ctx, nil, frameId, project.ID)
	if err != nil {
		fc.respondFrameError(ctx, "render frame", err)
		return
	}

	var cfg *frame.PresetConfig
	if preset, err := fc.app.Repository.FramePreset.GetByCode(ctx, nil, f.FrameType); err == nil {
		if cfg, err = preset.Config(); err != nil {
			fc.app.Logger.Warnf("Preset %s carries an unreadable config: %v", f.FrameType, err)
			cfg = nil
		}
	}

	width, height := frameRenderSize(f, cfg)

	svg, err := frame.RenderSVG(f.FrameType, width, height, cfg)
	if err != nil {
		fc.respondFrameError(ctx, "render frame", err)
		return
	}

	ctx.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}

func frameRenderSize(f *model.Frame, cfg *frame.PresetConfig) (int, int) {
	width, height := 1200, 1500
	if cfg != nil {
		if cfg.DefaultWidth > 0 {
			width = cfg.DefaultWidth
		}
		if cfg.DefaultHeight > 0 {
			height = cfg.DefaultHeight
		}
	}
	if f.Width != nil && *f.Width > 0 {
		width = *f.Width
	}
	if f.Height != nil && *f.Height > 0 {
		height = *f.Height
	}
	return width, height
}
