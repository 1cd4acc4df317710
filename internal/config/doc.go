// Package config manages application configuration for the blog API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth. A .env file is honored in development via godotenv.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: Postgres connection settings
//   - RedisConfig: Redis cache settings
//   - JWTConfig: JWT signing and validation settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT       - HTTP server port (default: 8080)
//	DB_HOST, DB_PORT  - Postgres host/port (default: localhost:5432)
//	DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE
//	DB_MAX_CONNS      - connection pool ceiling (default: 10)
//	REDIS_ADDR        - Redis address (default: localhost:6379)
//	JWT_SECRET        - JWT signing secret (required)
//	JWT_EXPIRATION_MINS - token lifetime in minutes (default: 60)
package config
