package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	appcontext "github.com/almrmi/serramenti/internal/app_context"
	"github.com/almrmi/serramenti/internal/auth"
	"github.com/almrmi/serramenti/internal/model"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index   *IndexController
	Auth    *AuthController
	Client  *ClientController
	Project *ProjectController
	Frame   *FrameController
	Preset  *PresetController
	Builder *BuilderController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:   &IndexController{baseController: bc},
		Auth:    &AuthController{baseController: bc},
		Client:  &ClientController{baseController: bc},
		Project: &ProjectController{baseController: bc},
		Frame:   &FrameController{baseController: bc},
		Preset:  &PresetController{baseController: bc},
		Builder: &BuilderController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}

// getOwnedProject resolves the acting user and the project addressed by the
// route, scoped to that user. This is the single ownership check every
// frame/builder operation relies on before the aggregate is invoked.
func (b *baseController) getOwnedProject(ctx *gin.Context) (*auth.JWTPayload, *model.Project, error) {
	user, err := b.getAuthUser(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get auth user: %w", err)
	}

	projectId := ctx.Param("projectId")
	if projectId == "" {
		return user, nil, errors.New("project id is required")
	}

	project, err := b.app.Repository.Project.GetByIDForUser(ctx, nil, projectId, user.ID)
	if err != nil {
		return user, nil, err
	}

	return user, project, nil
}
