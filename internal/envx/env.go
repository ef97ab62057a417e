// Package envx overlays configuration values from environment variables.
// Variables are named PREFIX_KEY, e.g. SCANKEEPER_HTTP_ADDR.
package envx

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Source reads prefixed environment variables through viper.
type Source struct {
	v *viper.Viper
}

// New creates a Source for variables starting with prefix + "_".
func New(prefix string) *Source {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return &Source{v: v}
}

// String sets *dst when the variable is present.
func (s *Source) String(key string, dst *string) {
	if s.v.IsSet(key) {
		*dst = s.v.GetString(key)
	}
}

// Duration sets *dst when the variable is present. Values use
// time.ParseDuration syntax ("3s", "1m").
func (s *Source) Duration(key string, dst *time.Duration) {
	if s.v.IsSet(key) {
		*dst = s.v.GetDuration(key)
	}
}

// Int sets *dst when the variable is present.
func (s *Source) Int(key string, dst *int) {
	if s.v.IsSet(key) {
		*dst = s.v.GetInt(key)
	}
}
