package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (lida via Viper de env e, opcionalmente, de arquivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Log       LogConfig
	CORS      CORSConfig
	Upload    UploadConfig
	Redis     RedisConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
	Site      SiteConfig
	AdminSeed AdminSeedConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // fuso usado para "hoje" (status de vencimento, mês corrente)
}

// DBConfig configuração do PostgreSQL.
// Se DatabaseURL não estiver vazio, é usado como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

// ConnectionString devolve DATABASE_URL se definido; senão o DSN montado por DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN monta o connection string com URL encoding para caracteres especiais na senha.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuração de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuração do servidor HTTP.
// ProxyHeader (ex.: X-Forwarded-For) só é lido quando a conexão vem de um dos TrustedProxies.
type HTTPConfig struct {
	Host           string
	Port           int
	ProxyHeader    string
	TrustedProxies []string
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level string
}

type CORSConfig struct {
	Origins string // lista separada por vírgula; "*" libera tudo
}

// UploadConfig armazenamento local de arquivos enviados.
type UploadConfig struct {
	Dir        string
	PublicPath string // rota pública que serve Dir
	PublicBase string // prefixo absoluto opcional para a URL devolvida
	MaxBytes   int
}

// RedisConfig cache de métricas; URL vazia desliga o cache.
type RedisConfig struct {
	URL        string
	TTLSeconds int
}

// MailConfig SMTP para notificação de contatos; Host vazio desliga o envio.
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
}

type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

// SiteConfig valores expostos ao site público (links de CTA).
type SiteConfig struct {
	APIBaseURL   string
	DashboardURL string
}

// AdminSeedConfig administrador criado no boot quando ainda não existe.
type AdminSeedConfig struct {
	Name     string
	Email    string
	Password string
}

// Enabled indica se há dados suficientes para o seed.
func (c AdminSeedConfig) Enabled() bool {
	return c.Email != "" && c.Password != ""
}

// Load lê a configuração das variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, DB_HOST, JWT_SECRET, REDIS_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // arquivo opcional

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "relampago-backoffice"),
			Timezone: getString(v, "APP_TIMEZONE", "America/Cuiaba"),
		},
		DB: DBConfig{
			Driver:      getString(v, "DB_DRIVER", "postgres"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "relampago"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "relampago-backoffice"),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 5000),
			ProxyHeader:    getString(v, "HTTP_PROXY_HEADER", ""),
			TrustedProxies: splitList(getString(v, "HTTP_TRUSTED_PROXIES", "")),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			Origins: getString(v, "CORS_ORIGINS", "http://localhost:5173"),
		},
		Upload: UploadConfig{
			Dir:        getString(v, "UPLOAD_DIR", "./uploads"),
			PublicPath: getString(v, "UPLOAD_PUBLIC_PATH", "/uploads"),
			PublicBase: getString(v, "UPLOAD_PUBLIC_BASE_URL", ""),
			MaxBytes:   getInt(v, "UPLOAD_MAX_BYTES", 25*1024*1024),
		},
		Redis: RedisConfig{
			URL:        getString(v, "REDIS_URL", ""),
			TTLSeconds: getInt(v, "METRICS_CACHE_TTL_SECONDS", 60),
		},
		Mail: MailConfig{
			Host:     getString(v, "MAIL_HOST", ""),
			Port:     getInt(v, "MAIL_PORT", 587),
			User:     getString(v, "MAIL_USERNAME", ""),
			Password: getString(v, "MAIL_PASSWORD", ""),
			From:     getString(v, "MAIL_FROM", "no-reply@relampago.com"),
			NotifyTo: getString(v, "MAIL_NOTIFY_TO", "admin@relampago.com"),
		},
		RateLimit: RateLimitConfig{
			PerSecond: getFloat(v, "RATE_LIMIT_PER_SECOND", 1),
			Burst:     getInt(v, "RATE_LIMIT_BURST", 5),
		},
		Site: SiteConfig{
			APIBaseURL:   getString(v, "SITE_API_BASE_URL", "http://localhost:5000/api"),
			DashboardURL: getString(v, "SITE_DASHBOARD_URL", "http://localhost:5173/admin"),
		},
		AdminSeed: AdminSeedConfig{
			Name:     getString(v, "ADMIN_SEED_NAME", "Administrador"),
			Email:    getString(v, "ADMIN_SEED_EMAIL", ""),
			Password: getString(v, "ADMIN_SEED_PASSWORD", ""),
		},
	}

	if cfg.JWT.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("JWT_SECRET obrigatório em produção")
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret-change-me"
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

// splitList "a, b,,c" -> [a b c].
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
