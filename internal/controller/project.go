package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/internal/model"
	"github.com/almrmi/serramenti/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectController struct {
	*baseController
}

func (pc ProjectController) ListProjects(ctx *gin.Context) {
	user, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	projects, total, err := pc.app.Repository.Project.GetForUser(ctx, nil, user.ID, uint(page), 0)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list projects", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"projects":  projects,
		"total":     total,
		"page":      page,
		"totalPage": util.CalculateTotalPage(total, 0),
	})
}

type createProjectRequest struct {
	Name        string  `json:"name" form:"name" binding:"required,strNotEmpty,cmax=255"`
	Description string  `json:"description" form:"description"`
	ClientID    *string `json:"clientId" form:"clientId"`
}

func (pc ProjectController) CreateProject(ctx *gin.Context) {
	user, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	var body createProjectRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	clientID, err := pc.resolveClientID(ctx, user.ID, body.ClientID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, "clientId"), nil)
		return
	}

	project := model.Project{
		Name:        body.Name,
		Description: body.Description,
		Status:      constant.ProjectStatusDraft,
		UserID:      user.ID,
		ClientID:    clientID,
	}

	created, err := pc.app.Repository.Project.Create(ctx, nil, &project)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": created,
	})
}

func (pc ProjectController) GetProject(ctx *gin.Context) {
	_, project, err := pc.getOwnedProject(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

type updateProjectRequest struct {
	Name        string  `json:"name" form:"name" binding:"required,strNotEmpty,cmax=255"`
	Description string  `json:"description" form:"description"`
	Status      string  `json:"status" form:"status" binding:"required"`
	ClientID    *string `json:"clientId" form:"clientId"`
}

func (pc ProjectController) UpdateProject(ctx *gin.Context) {
	user, project, err := pc.getOwnedProject(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	var body updateProjectRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	status := constant.ProjectStatus(body.Status)
	if !status.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(errors.New("invalid project status"), "status"), nil)
		return
	}

	clientID, err := pc.resolveClientID(ctx, user.ID, body.ClientID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, "clientId"), nil)
		return
	}

	updated := model.Project{
		Name:        body.Name,
		Description: body.Description,
		Status:      status,
		ClientID:    clientID,
	}
	updated.ID = project.ID

	if err := pc.app.Repository.Project.Update(ctx, nil, &updated); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (pc ProjectController) DeleteProject(ctx *gin.Context) {
	_, project, err := pc.getOwnedProject(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := pc.app.Repository.Project.Delete(ctx, nil, project.ID); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// resolveClientID verifies a submitted client id belongs to the acting user.
// An empty or absent id detaches the project from any client.
func (pc ProjectController) resolveClientID(ctx *gin.Context, userID string, clientID *string) (*string, error) {
	if clientID == nil || *clientID == "" {
		return nil, nil
	}

	if _, err := pc.app.Repository.Client.GetByIDForUser(ctx, nil, *clientID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("client not found")
		}
		return nil, err
	}

	return clientID, nil
}
