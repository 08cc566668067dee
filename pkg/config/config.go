package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultAPIURL URL de l'API de gestion quand aucune variable n'est définie.
const DefaultAPIURL = "https://api.viaconsulting.mg/api"

// Config regroupe la configuration de l'application (lecture via Viper depuis env et optionnellement fichier).
type Config struct {
	App  AppConfig
	API  APIConfig
	JWT  JWTConfig
	HTTP HTTPConfig
}

// AppConfig configuration générale.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// IsProduction indique si les traces détaillées du client API doivent être coupées.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// APIConfig configuration du backend distant (source de vérité).
type APIConfig struct {
	BaseURL string
	Token   string // jeton Bearer transmis tel quel au backend (vide = pas d'en-tête)
	Timeout time.Duration
}

// JWTConfig configuration des jetons opérateurs du tableau de bord.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig configuration du serveur HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr renvoie l'adresse d'écoute (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lit la configuration depuis les variables d'environnement (et optionnellement un fichier).
// Les variables d'environnement sont prioritaires. Noms attendus: APP_ENV, API_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // fichier optionnel

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	// NEXT_PUBLIC_API_URL est le nom historique côté front; API_URL l'emporte s'il est défini.
	baseURL := getString(v, "API_URL", getString(v, "NEXT_PUBLIC_API_URL", DefaultAPIURL))
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("config: API_URL vide")
	}

	timeoutSec := getInt(v, "API_TIMEOUT_SECONDS", 30)
	if timeoutSec <= 0 {
		timeoutSec = 30
	}

	env := getString(v, "APP_ENV", "")
	if env == "" {
		env = getString(v, "NODE_ENV", "development")
	}

	cfg := &Config{
		App: AppConfig{
			Env:      env,
			Name:     getString(v, "APP_NAME", "dashboard-huiles"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL: baseURL,
			Token:   getString(v, "API_TOKEN", ""),
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "dashboard-huiles"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
