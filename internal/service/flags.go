package service

import (
	"context"
	"os"
	"strconv"
	"strings"
)

const (
	// FlagRotatedCredentials selects the rotated-credentials format for the
	// email-change flow. Disabled, the flow falls back to the legacy
	// single-salt format.
	FlagRotatedCredentials = "rotated-credentials"

	// FlagLegacyMasterKeyCache keeps the deprecated local master-key cache
	// refreshed. Turning it off retires the legacy shim.
	FlagLegacyMasterKeyCache = "legacy-master-key-cache"
)

type staticFlagSource map[string]bool

// NewStaticFlagSource returns a FlagSource with fixed values. Unknown flags
// read as disabled.
func NewStaticFlagSource(flags map[string]bool) FlagSource {
	s := make(staticFlagSource, len(flags))
	for name, enabled := range flags {
		s[name] = enabled
	}
	return s
}

func (s staticFlagSource) Enabled(_ context.Context, flag string) bool {
	return s[flag]
}

type envFlagSource struct {
	prefix   string
	defaults map[string]bool
}

// NewEnvFlagSource reads flags from the environment on every lookup, so a
// flag flip is picked up by the next operation without a restart. The flag
// name is upper-cased, dashes become underscores and the prefix is prepended:
// "rotated-credentials" with prefix "UNLOCK_FLAG_" reads
// UNLOCK_FLAG_ROTATED_CREDENTIALS. An unset or unparsable variable falls back
// to the default for that flag.
func NewEnvFlagSource(prefix string, defaults map[string]bool) FlagSource {
	d := make(map[string]bool, len(defaults))
	for name, enabled := range defaults {
		d[name] = enabled
	}
	return &envFlagSource{prefix: prefix, defaults: d}
}

func (e *envFlagSource) Enabled(_ context.Context, flag string) bool {
	key := e.prefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
	if raw, ok := os.LookupEnv(key); ok {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			return enabled
		}
	}
	return e.defaults[flag]
}
