package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a accounts API base URL
//	-d local database DSN
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-kdf-concurrency max concurrent key derivations
func ParseFlags() *StructuredConfig {
	var apiAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var kdfConcurrency int

	flag.StringVar(&apiAddress, "a", "", "Accounts API base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&kdfConcurrency, "kdf-concurrency", 0, "Max concurrent key derivations")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			Address:        apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			KdfConcurrency: kdfConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}
}
