package settings

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	flagAllEnv = "all-env"
	flagNoEnv  = "no-env"
)

// NetAddress holds structured network address data for host and port.
type NetAddress struct {
	Host string
	Port int
}

// BindFlags registers the global flags on fs and returns the Settings they
// populate. Flags have zero defaults so that only flags the user sets take
// part in the merge; the effective defaults come from [Defaults].
//
// Flags:
//
//	-f/--env-file  env file path
//	--all-env      let every process environment variable override the file
//	--no-env       ignore the process environment
//	-c/--config    json file path with settings
//	--log-level    log level
//	--log-format   log format, json or console
func BindFlags(fs *pflag.FlagSet) *Settings {
	s := &Settings{}

	fs.StringVarP(&s.Source.EnvFile, "env-file", "f", "", "Env file path (default .env)")
	fs.BoolVar(&s.Source.AllEnv, flagAllEnv, false, "Let every process environment variable override the env file")
	fs.BoolVar(&s.Source.NoEnv, flagNoEnv, false, "Ignore process environment overrides")
	fs.StringVarP(&s.JSONFilePath, "config", "c", "", "JSON settings file path")
	fs.StringVar(&s.Log.Level, "log-level", "", "Log level: debug, info, warn, error (default info)")
	fs.StringVar(&s.Log.Format, "log-format", "", "Log format: json, console (default json)")

	return s
}

// BindInspectorFlags registers the inspect command flags into s.
func BindInspectorFlags(fs *pflag.FlagSet, s *Settings) {
	fs.StringVar(&s.Inspector.Address, "address", "", "Net address host:port (default 127.0.0.1:8089)")
	fs.StringVar(&s.Inspector.AuthKey, "auth-key", "", "Basic-auth variable gating /api (default FLOWER_BASIC_AUTH)")
	fs.DurationVar(&s.Inspector.ReadTimeout, "read-timeout", 0, "Request read timeout (default 5s)")
}

// BindProbeFlags registers the doctor command flags into s.
func BindProbeFlags(fs *pflag.FlagSet, s *Settings) {
	fs.DurationVar(&s.Probe.Timeout, "timeout", 0, "Timeout of each probe (default 5s)")
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty (all interfaces), and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer in 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
