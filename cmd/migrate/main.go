package main

import (
	"context"
	"encoding/json"

	"github.com/almrmi/serramenti/internal/auth"
	"github.com/almrmi/serramenti/internal/config"
	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/internal/database"
	"github.com/almrmi/serramenti/internal/env"
	"github.com/almrmi/serramenti/internal/model"
	"github.com/almrmi/serramenti/internal/repository"
	"github.com/almrmi/serramenti/pkg/frame"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv()
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.Client{},
		&model.Project{},
		&model.Frame{},
		&model.FramePreset{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	repo := repository.NewRepository(db, logger, auth.NewJwt(cfg.Auth, logger))
	if err := seedFramePresets(repo); err != nil {
		logger.Panic(err)
	}
	logger.Info("Frame presets seeded")
}

type presetSeed struct {
	code        string
	name        string
	description string
	category    constant.PresetCategory
	sortOrder   int
	config      frame.PresetConfig
}

// The builder palette, keyed by code. Upserting by code means re-running the
// migration refreshes preset payloads without duplicating rows or touching
// frames that reference them.
var presetSeeds = []presetSeed{
	{
		code:        constant.FrameType1Anta,
		name:        "1 Anta",
		description: "Finestra ad anta singola con apertura a battente",
		category:    constant.PresetCategoryImposte,
		sortOrder:   1,
		config: frame.PresetConfig{
			NumPanels:        1,
			DefaultWidth:     1200,
			DefaultHeight:    1500,
			MinWidth:         400,
			MaxWidth:         2000,
			MinHeight:        600,
			MaxHeight:        2500,
			FrameThickness:   frame.DefaultFrameThickness,
			GlassInset:       frame.DefaultGlassInset,
			OpeningDirection: "right",
			OpeningSymbol:    frame.OpeningSymbolCross,
		},
	},
	{
		code:        constant.FrameType2Ante,
		name:        "2 Ante",
		description: "Finestra a due ante simmetriche con apertura centrale",
		category:    constant.PresetCategoryImposte,
		sortOrder:   2,
		config: frame.PresetConfig{
			NumPanels:        2,
			DefaultWidth:     1500,
			DefaultHeight:    1500,
			MinWidth:         800,
			MaxWidth:         3000,
			MinHeight:        600,
			MaxHeight:        2500,
			FrameThickness:   frame.DefaultFrameThickness,
			GlassInset:       frame.DefaultGlassInset,
			OpeningDirection: "center",
			OpeningSymbol:    frame.OpeningSymbolCross,
		},
	},
	{
		code:        constant.FrameType3Ante,
		name:        "3 Ante",
		description: "Porta-finestra a tre ante con pannello centrale e laterali",
		category:    constant.PresetCategoryImposte,
		sortOrder:   3,
		config: frame.PresetConfig{
			NumPanels:        3,
			DefaultWidth:     2000,
			DefaultHeight:    2200,
			MinWidth:         1500,
			MaxWidth:         4000,
			MinHeight:        1800,
			MaxHeight:        3000,
			FrameThickness:   frame.DefaultFrameThickness,
			GlassInset:       frame.DefaultGlassInset,
			PanelWidths:      []int{600, 800, 600},
			OpeningDirection: "center",
			OpeningSymbol:    frame.OpeningSymbolCross,
		},
	},
	{
		code:        constant.FrameTypeFinestraFissa,
		name:        "Finestra Fissa",
		description: "Finestra fissa senza apertura",
		category:    constant.PresetCategoryImposte,
		sortOrder:   4,
		config: frame.PresetConfig{
			NumPanels:      1,
			DefaultWidth:   1000,
			DefaultHeight:  1200,
			MinWidth:       400,
			MaxWidth:       2500,
			MinHeight:      400,
			MaxHeight:      2500,
			FrameThickness: frame.DefaultFrameThickness,
			GlassInset:     frame.DefaultGlassInset,
			OpeningSymbol:  frame.OpeningSymbolNone,
		},
	},
	{
		code:        "scorrevole",
		name:        "Scorrevole",
		description: "Apertura scorrevole laterale",
		category:    constant.PresetCategoryApertura,
		sortOrder:   1,
		config: frame.PresetConfig{
			OpeningSymbol: frame.OpeningSymbolArrow,
		},
	},
	{
		code:        "battente",
		name:        "Battente",
		description: "Apertura a battente tradizionale",
		category:    constant.PresetCategoryApertura,
		sortOrder:   2,
		config: frame.PresetConfig{
			OpeningSymbol: frame.OpeningSymbolCross,
		},
	},
	{
		code:        "anta_ribalta",
		name:        "Anta Ribalta",
		description: "Apertura combinata a battente e ribalta",
		category:    constant.PresetCategoryApertura,
		sortOrder:   3,
		config: frame.PresetConfig{
			OpeningSymbol: frame.OpeningSymbolDiagonal,
		},
	},
}

func seedFramePresets(repo *repository.Repository) error {
	ctx := context.Background()

	for _, seed := range presetSeeds {
		rawConfig, err := json.Marshal(seed.config)
		if err != nil {
			return err
		}

		preset := model.FramePreset{
			Code:          seed.code,
			Name:          seed.name,
			Description:   seed.description,
			Category:      seed.category,
			DefaultConfig: rawConfig,
			IsActive:      true,
			SortOrder:     seed.sortOrder,
		}

		if err := repo.FramePreset.Upsert(ctx, nil, &preset); err != nil {
			return err
		}
	}

	return nil
}
