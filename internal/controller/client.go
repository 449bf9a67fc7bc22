package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/almrmi/serramenti/internal/model"
	"github.com/almrmi/serramenti/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ClientController struct {
	*baseController
}

const ErrClientNameRequired = "provide nome/cognome or ragione sociale"

// clientBody is shared by create and update. Every field is optional except
// the rule that a client has either a personal name or a business name.
type clientBody struct {
	Nome               string `json:"nome" form:"nome" binding:"omitempty,cmax=100"`
	Cognome            string `json:"cognome" form:"cognome" binding:"omitempty,cmax=100"`
	RagioneSociale     string `json:"ragioneSociale" form:"ragioneSociale" binding:"omitempty,cmax=255"`
	IndirizzoVia       string `json:"indirizzoVia" form:"indirizzoVia" binding:"omitempty,cmax=255"`
	IndirizzoCitta     string `json:"indirizzoCitta" form:"indirizzoCitta" binding:"omitempty,cmax=100"`
	IndirizzoCap       string `json:"indirizzoCap" form:"indirizzoCap" binding:"omitempty,cmax=10"`
	IndirizzoProvincia string `json:"indirizzoProvincia" form:"indirizzoProvincia" binding:"omitempty,cmax=5"`
	Telefono           string `json:"telefono" form:"telefono" binding:"omitempty,cmax=30"`
	Cellulare          string `json:"cellulare" form:"cellulare" binding:"omitempty,cmax=30"`
	Email              string `json:"email" form:"email" binding:"omitempty,email"`
	Pec                string `json:"pec" form:"pec" binding:"omitempty,email"`
	CodiceFiscale      string `json:"codiceFiscale" form:"codiceFiscale" binding:"omitempty,cmax=16"`
	PartitaIva         string `json:"partitaIva" form:"partitaIva" binding:"omitempty,cmax=13"`
	Note               string `json:"note" form:"note"`
}

func (b clientBody) hasName() bool {
	return b.Nome != "" || b.Cognome != "" || b.RagioneSociale != ""
}

func (b clientBody) toModel() model.Client {
	return model.Client{
		Nome:               b.Nome,
		Cognome:            b.Cognome,
		RagioneSociale:     b.RagioneSociale,
		IndirizzoVia:       b.IndirizzoVia,
		IndirizzoCitta:     b.IndirizzoCitta,
		IndirizzoCap:       b.IndirizzoCap,
		IndirizzoProvincia: b.IndirizzoProvincia,
		Telefono:           b.Telefono,
		Cellulare:          b.Cellulare,
		Email:              b.Email,
		Pec:                b.Pec,
		CodiceFiscale:      b.CodiceFiscale,
		PartitaIva:         b.PartitaIva,
		Note:               b.Note,
	}
}

func (cc ClientController) ListClients(ctx *gin.Context) {
	user, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	// Selection dropdowns want the full list without pagination.
	if ctx.Query("all") == "true" {
		clients, err := cc.app.Repository.Client.GetAllForUser(ctx, nil, user.ID)
		if err != nil {
			cc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list clients", util.GenerateErrorMessages(err), nil)
			return
		}

		util.ResponseSuccess(ctx, gin.H{
			"clients": clients,
		})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	clients, total, err := cc.app.Repository.Client.GetForUser(ctx, nil, user.ID, uint(page), 0)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list clients", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"clients":   clients,
		"total":     total,
		"page":      page,
		"totalPage": util.CalculateTotalPage(total, 0),
	})
}

func (cc ClientController) CreateClient(ctx *gin.Context) {
	user, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	var body clientBody
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if !body.hasName() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(errors.New(ErrClientNameRequired), "nome"), nil)
		return
	}

	client := body.toModel()
	client.UserID = user.ID

	created, err := cc.app.Repository.Client.Create(ctx, nil, &client)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create client", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"client": created,
	})
}

func (cc ClientController) UpdateClient(ctx *gin.Context) {
	user, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	clientId := ctx.Param("clientId")

	var body clientBody
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if !body.hasName() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(errors.New(ErrClientNameRequired), "nome"), nil)
		return
	}

	existing, err := cc.app.Repository.Client.GetByIDForUser(ctx, nil, clientId, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Client not found", util.GenerateErrorMessages(err), nil)
			return
		}
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update client", util.GenerateErrorMessages(err), nil)
		return
	}

	client := body.toModel()
	client.ID = existing.ID

	if err := cc.app.Repository.Client.Update(ctx, nil, &client); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update client", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (cc ClientController) DeleteClient(ctx *gin.Context) {
	user, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	clientId := ctx.Param("clientId")

	if _, err := cc.app.Repository.Client.GetByIDForUser(ctx, nil, clientId, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Client not found", util.GenerateErrorMessages(err), nil)
			return
		}
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete client", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.Client.Delete(ctx, nil, clientId); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete client", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
