package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
// OpenRouterAPIKey no es required: su ausencia se reporta como error de
// configuracion recien cuando se pide un analisis.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8080"`
	EthosV1BaseURL    string `env:"ETHOS_V1_BASE_URL" envDefault:"https://api.ethos.network/api/v1"`
	EthosV2BaseURL    string `env:"ETHOS_V2_BASE_URL" envDefault:"https://api.ethos.network/api/v2"`
	OpenRouterAPIKey  string `env:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	SiteURL           string `env:"SITE_URL" envDefault:"https://ethos-spidergraph.deno.dev"`
	SiteName          string `env:"SITE_NAME" envDefault:"Ethos Spider Graph"`
	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
