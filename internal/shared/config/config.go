package config

import "os"

// Config centraliza variáveis de ambiente e parâmetros de execução do serviço
// Inclui segredo do cron, CORS e portas
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string // ex: "lockbox-api"

	// Segredo compartilhado com o job agendado de ingestão (header X-Cron-Secret)
	CronSecret string

	// Origens liberadas no CORS, separadas por vírgula; "*" libera tudo
	CORSAllowedOrigins string

	HTTPPort    string // Porta pública (API REST)
	MetricsPort string // Porta exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults
// O default de CRON_SECRET ("change-me") existe só pra rodar local; em
// qualquer deploy real a variável deve ser sobrescrita
func Load() Config {
	return Config{
		Env:         getEnv("ENV", "local"),
		ServiceName: getEnv("SERVICE_NAME", "lockbox-api"),

		CronSecret: getEnv("CRON_SECRET", "change-me"),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),

		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9095"),
	}
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
