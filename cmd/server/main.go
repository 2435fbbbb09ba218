package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/UmashankarGouda/KrishiChakra/config"
	"github.com/UmashankarGouda/KrishiChakra/database"
	"github.com/UmashankarGouda/KrishiChakra/router"

	// Auth
	authCtrlImp "github.com/UmashankarGouda/KrishiChakra/pkg/auth/controllerImp"

	// Field
	fieldCtrlImp "github.com/UmashankarGouda/KrishiChakra/pkg/field/controllerImp"
	fieldRepoImp "github.com/UmashankarGouda/KrishiChakra/pkg/field/repositoryImp"

	// Rotation planning
	rotCtrlImp "github.com/UmashankarGouda/KrishiChakra/pkg/rotation/controllerImp"
	rotRepoImp "github.com/UmashankarGouda/KrishiChakra/pkg/rotation/repositoryImp"
	rotSvcImp "github.com/UmashankarGouda/KrishiChakra/pkg/rotation/serviceImp"

	// Upstreams
	"github.com/UmashankarGouda/KrishiChakra/pkg/ai"
	"github.com/UmashankarGouda/KrishiChakra/pkg/bhuvan"
	"github.com/UmashankarGouda/KrishiChakra/pkg/crops"
	"github.com/UmashankarGouda/KrishiChakra/pkg/rag"

	// KB
	kbCtrlImp "github.com/UmashankarGouda/KrishiChakra/pkg/kb/controllerImp"
	kbEmbedder "github.com/UmashankarGouda/KrishiChakra/pkg/kb/embedder"
	kbRepoImp "github.com/UmashankarGouda/KrishiChakra/pkg/kb/repositoryImp"
	kbServiceImp "github.com/UmashankarGouda/KrishiChakra/pkg/kb/serviceImp"

	// Health
	healthCtrlImp "github.com/UmashankarGouda/KrishiChakra/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Crop lexicon (built-in table, XLSX override when configured)
	lex := crops.Default()
	if cfg.CropLexiconXLSX != "" {
		if l, err := crops.LoadXLSX(cfg.CropLexiconXLSX); err != nil {
			log.Printf("[cfg] crop lexicon %s: %v, using built-in", cfg.CropLexiconXLSX, err)
		} else {
			lex = l
		}
	}

	// 5) Simplifier (mock fallback when no key is set)
	var simplifier ai.Simplifier
	if cfg.SimplifyAPIKey != "" {
		simplifier = ai.NewOpenRouter(cfg.SimplifyAPIKey,
			ai.Provider{Endpoint: cfg.SimplifyEndpoint, Model: cfg.SimplifyModel},
			ai.Provider{Endpoint: cfg.SimplifyEndpoint, Model: cfg.SimplifyFallbackModel},
		)
	} else {
		simplifier = ai.NewMock()
	}

	// 6) KB wiring
	var emb *kbEmbedder.Client
	if cfg.EmbEndpoint != "" {
		emb = kbEmbedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	}
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbServiceImp.New(kbRepo, emb)
	kbCtrl := kbCtrlImp.New(kbSvc)

	// 7) Repos/Controllers
	fRepo := fieldRepoImp.New(db)
	fCtrl := fieldCtrlImp.New(fRepo)

	pRepo := rotRepoImp.New(db)
	ragClient := rag.New(cfg.RAGEndpoint)
	geo := bhuvan.New(cfg.BhuvanToken, cfg.BhuvanSimulate)
	rotSvc := rotSvcImp.NewRotationService(lex, ragClient, simplifier, geo, cfg.RotationBackendURL, pRepo, kbSvc)
	rotCtrl := rotCtrlImp.New(rotSvc)

	// Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(e, fCtrl, rotCtrl, authCtrl, kbCtrl, hCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
