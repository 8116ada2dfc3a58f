package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	Log  LogConfig
	HTTP HTTPConfig
	Bar  BarConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	BodyLimitMB int // tamaño máximo de subida (reportes y CSV)
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BodyLimitBytes límite de cuerpo para fiber.Config.BodyLimit.
func (c HTTPConfig) BodyLimitBytes() int {
	if c.BodyLimitMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// BarConfig parámetros de negocio del bar.
type BarConfig struct {
	LowStockThreshold int // porciones mínimas antes de alertar
	BottleSizeML      int // tamaño de botella para la lista de compras
	ReportMinDataRow  int // fila mínima (0-based) de datos del reporte; 0 deja como único límite la cabecera de la sección
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BAR_LOW_STOCK_THRESHOLD, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "barkeeper"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			BodyLimitMB: getInt(v, "HTTP_BODY_LIMIT_MB", 4),
		},
		Bar: BarConfig{
			LowStockThreshold: getInt(v, "BAR_LOW_STOCK_THRESHOLD", 15),
			BottleSizeML:      getInt(v, "BAR_BOTTLE_SIZE_ML", 700),
			ReportMinDataRow:  getInt(v, "REPORT_MIN_DATA_ROW", 0),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	if c.Bar.LowStockThreshold <= 0 {
		return fmt.Errorf("config: BAR_LOW_STOCK_THRESHOLD debe ser positivo: %d", c.Bar.LowStockThreshold)
	}
	if c.Bar.BottleSizeML <= 0 {
		return fmt.Errorf("config: BAR_BOTTLE_SIZE_ML debe ser positivo: %d", c.Bar.BottleSizeML)
	}
	if c.Bar.ReportMinDataRow < 0 {
		return fmt.Errorf("config: REPORT_MIN_DATA_ROW no puede ser negativo: %d", c.Bar.ReportMinDataRow)
	}
	return nil
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
