// Package config provides configuration management for txd-manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file next to the job lists.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Storage: S3/MinIO credentials and bucket settings for publishing
//   - Log: Logging level and format
//   - Batch: Behavior of batch runs (pause on exit, strict exit codes)
//
// Defaults come from the `default` struct tags of each subsection; any
// value can be overridden through the environment using the upper-cased
// key path, e.g. BATCH_PAUSE_ON_EXIT=false or STORAGE_BUCKET=textures.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
