// Package config reads service settings from flags, environment variables
// and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to flag names for the namespaced environment
// variable, e.g. IP2COUNTRY_IPV4_CSV. The bare form (IPV4_CSV) is also read.
const EnvPrefix = "IP2COUNTRY"

// DefaultFileName is looked up in the home directory when no config file is
// given explicitly.
const DefaultFileName = ".ip2country.yaml"

// Config holds every setting the commands use.
type Config struct {
	IPv4CSV          string
	IPv6CSV          string
	MMDBPath         string
	ExitOnDataChange bool

	Port      string
	RateLimit float64
	RateBurst int

	SrvAddr string

	LogLevel  string
	LogFormat string
}

// AddLogFlags registers the logging flags.
func AddLogFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default $HOME/"+DefaultFileName+" if present)")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "json", "log format (json, text)")
}

// AddDataFlags registers the flags selecting the country data sources.
func AddDataFlags(fs *pflag.FlagSet) {
	fs.String("ipv4-csv", "geo-whois-asn-country-ipv4-num.csv", "IPv4 range file (start,end,code)")
	fs.String("ipv6-csv", "geo-whois-asn-country-ipv6-num.csv", "IPv6 range file (start,end,code)")
	fs.String("mmdb-path", "", "optional MaxMind MMDB consulted for addresses the range files do not cover")
	fs.Bool("exit-on-data-change", false, "shut down when a data file changes on disk")
}

// AddHTTPFlags registers the HTTP server flags.
func AddHTTPFlags(fs *pflag.FlagSet) {
	fs.String("port", "5000", "HTTP listen port")
	fs.Float64("rate-limit", 0, "requests per second allowed per client, 0 disables limiting")
	fs.Int("rate-burst", 20, "burst size for the per-client rate limit")
}

// AddGRPCFlags registers the gRPC server flags.
func AddGRPCFlags(fs *pflag.FlagSet) {
	fs.String("srv-addr", "[::1]:50051", "gRPC listen address")
}

// prefixOnly lists flags read only from their namespaced environment
// variable, because the bare name is too generic to trust.
var prefixOnly = map[string]bool{
	"config": true,
}

// BindFlag plumbs a flag into viper together with its environment variables.
func BindFlag(v *viper.Viper, flag *pflag.Flag) error {
	if err := v.BindPFlag(flag.Name, flag); err != nil {
		return err
	}
	env := strings.ToUpper(strings.ReplaceAll(flag.Name, "-", "_"))
	if prefixOnly[flag.Name] {
		return v.BindEnv(flag.Name, EnvPrefix+"_"+env)
	}
	return v.BindEnv(flag.Name, EnvPrefix+"_"+env, env)
}

// New returns a viper instance bound to every flag in flags and, when
// present, the config file named by the "config" flag.
func New(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = BindFlag(v, f)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	path, explicit := v.GetString("config"), true
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return v, nil
		}
		path, explicit = filepath.Join(home, DefaultFileName), false
	}
	if err := readFile(v, path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}
		return nil, err
	}
	return v, nil
}

func readFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Load extracts a Config from v.
func Load(v *viper.Viper) Config {
	return Config{
		IPv4CSV:          v.GetString("ipv4-csv"),
		IPv6CSV:          v.GetString("ipv6-csv"),
		MMDBPath:         v.GetString("mmdb-path"),
		ExitOnDataChange: v.GetBool("exit-on-data-change"),
		Port:             v.GetString("port"),
		RateLimit:        v.GetFloat64("rate-limit"),
		RateBurst:        v.GetInt("rate-burst"),
		SrvAddr:          v.GetString("srv-addr"),
		LogLevel:         v.GetString("log-level"),
		LogFormat:        v.GetString("log-format"),
	}
}
