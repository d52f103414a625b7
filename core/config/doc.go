// Package config provides configuration management for the Bucket Manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each field as `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Storage: S3/MinIO credentials and default bucket
//   - Log: Logging level and format
//   - Database: Optional audit database connection
//   - Search: Word search limits
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
