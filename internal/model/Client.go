package model

import (
	"strings"

	"gorm.io/gorm"
)

// Client is a contact/fiscal record owned by a user. Either the personal name
// pair (nome/cognome) or the business name (ragione_sociale) must be present;
// the request layer enforces that before a client reaches the database.
// Clients are soft-deleted so their projects keep a readable history.
type Client struct {
	BaseModel
	Code               string         `gorm:"type:varchar(12);unique;not null" json:"code"`
	Nome               string         `gorm:"type:varchar(100);default:null" json:"nome" form:"nome"`
	Cognome            string         `gorm:"type:varchar(100);default:null" json:"cognome" form:"cognome"`
	RagioneSociale     string         `gorm:"type:varchar(255);default:null" json:"ragioneSociale" form:"ragioneSociale"`
	IndirizzoVia       string         `gorm:"type:varchar(255);default:null" json:"indirizzoVia" form:"indirizzoVia"`
	IndirizzoCitta     string         `gorm:"type:varchar(100);default:null" json:"indirizzoCitta" form:"indirizzoCitta"`
	IndirizzoCap       string         `gorm:"type:varchar(10);default:null" json:"indirizzoCap" form:"indirizzoCap"`
	IndirizzoProvincia string         `gorm:"type:varchar(5);default:null" json:"indirizzoProvincia" form:"indirizzoProvincia"`
	Telefono           string         `gorm:"type:varchar(30);default:null" json:"telefono" form:"telefono"`
	Cellulare          string         `gorm:"type:varchar(30);default:null" json:"cellulare" form:"cellulare"`
	Email              string         `gorm:"type:varchar(255);default:null" json:"email" form:"email"`
	Pec                string         `gorm:"type:varchar(255);default:null" json:"pec" form:"pec"`
	CodiceFiscale      string         `gorm:"type:varchar(16);default:null" json:"codiceFiscale" form:"codiceFiscale"`
	PartitaIva         string         `gorm:"type:varchar(13);default:null" json:"partitaIva" form:"partitaIva"`
	Note               string         `gorm:"type:text;default:null" json:"note" form:"note"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	UserID string `gorm:"type:text;not null;index" json:"userId"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (c Client) TableName() string {
	return "clients"
}

// DisplayName prefers the business name; otherwise the trimmed personal name.
func (c Client) DisplayName() string {
	if c.RagioneSociale != "" {
		return c.RagioneSociale
	}

	return strings.TrimSpace(c.Nome + " " + c.Cognome)
}

// FullAddress joins the non-empty address parts as
// "via, cap citta, (provincia)". Returns "" when every part is empty.
func (c Client) FullAddress() string {
	parts := []string{}

	if c.IndirizzoVia != "" {
		parts = append(parts, c.IndirizzoVia)
	}
	if capCity := strings.TrimSpace(c.IndirizzoCap + " " + c.IndirizzoCitta); capCity != "" {
		parts = append(parts, capCity)
	}
	if c.IndirizzoProvincia != "" {
		parts = append(parts, "("+c.IndirizzoProvincia+")")
	}

	return strings.Join(parts, ", ")
}
