// Package config loads runtime configuration for the contactbook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via flags: -c or -config. Files ending in
//     .yaml or .yml are YAML, anything else is JSON.
//  3. Environment variables CONTACTS_DATA_PATH, CONTACTS_STORAGE_KEY,
//     CONTACTS_BACKEND and CONTACTS_LOG_LEVEL. A .env file in the working
//     directory supplies values that are not set in the environment.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite data file
//	-k string   storage key
//	-s string   storage backend (sqlite|memory)
//	-l string   log level (debug|info|warn|error)
//
// # File schema
//
//	{
//	  "data_path": "contacts.db",
//	  "storage_key": "contacts",
//	  "backend": "sqlite",
//	  "log_level": "info"
//	}
package config
