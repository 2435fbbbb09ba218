package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	// RAG query service (the "rag model" API).
	RAGEndpoint string

	// Optional integrated rotation backend tried before the direct RAG path.
	RotationBackendURL string

	// OpenRouter-compatible chat-completions endpoint for farmer-friendly
	// text simplification, with a primary and a fallback model.
	SimplifyEndpoint      string
	SimplifyAPIKey        string
	SimplifyModel         string
	SimplifyFallbackModel string

	// Bhuvan LULC statistics.
	BhuvanToken    string
	BhuvanSimulate bool

	// Embeddings endpoint for the knowledge base (optional).
	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string

	// Optional crop lexicon override workbook.
	CropLexiconXLSX string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:                  get("PORT", "8080"),
		Timezone:              get("TZ", "Asia/Kolkata"),
		DBPath:                get("DB_PATH", "krishichakra.db"),
		RAGEndpoint:           get("RAG_ENDPOINT", "http://localhost:8001"),
		RotationBackendURL:    get("ROTATION_BACKEND_URL", ""),
		SimplifyEndpoint:      get("SIMPLIFY_ENDPOINT", "https://openrouter.ai/api"),
		SimplifyAPIKey:        get("SIMPLIFY_API_KEY", ""),
		SimplifyModel:         get("SIMPLIFY_MODEL", "deepseek/deepseek-chat"),
		SimplifyFallbackModel: get("SIMPLIFY_FALLBACK_MODEL", "meta-llama/llama-3.3-70b-instruct"),
		BhuvanToken:           get("BHUVAN_TOKEN", ""),
		BhuvanSimulate:        get("BHUVAN_SIMULATE", "true") == "true",
		EmbEndpoint:           get("EMB_ENDPOINT", ""),
		EmbAPIKey:             get("EMB_API_KEY", ""),
		EmbModel:              get("EMB_MODEL", ""),
		CropLexiconXLSX:       get("CROP_LEXICON_XLSX", ""),
	}
	log.Printf("[cfg] port=%s db=%s rag=%s backend=%s", cfg.Port, cfg.DBPath, cfg.RAGEndpoint, cfg.RotationBackendURL)
	return cfg
}
