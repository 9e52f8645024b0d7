// Package config provides configuration management for the quest-zone service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, optional admin API key)
//   - Database: remote content table connection details (unset = fallback mode)
//   - Storage: S3/MinIO credentials, gallery bucket, and public URL base
//   - Auth: admin session token settings
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
