package controller

import (
	"net/http"

	"github.com/almrmi/serramenti/internal/util"
	"github.com/gin-gonic/gin"
)

type PresetController struct {
	*baseController
}

// ListPresets returns the active presets grouped by palette category, in the
// order the builder palette shows them.
func (pc PresetController) ListPresets(ctx *gin.Context) {
	presets, err := pc.app.Repository.FramePreset.ListActive(ctx, nil)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list presets", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"presets": presets,
	})
}
