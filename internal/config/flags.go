package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags from args into a fresh
// [StructuredConfig]. Unset flags leave their fields zero so they do not
// override other sources.
//
// Flags:
//
//	-api-url          people API base URL
//	-layout           presentation layout: compact or full
//	-request-timeout  outbound request timeout (e.g. "5s")
//	-log-level        log level (debug, info, warn, error)
//	-env-file         .env file path
//	-c/-config        JSON or YAML config file path
//	-a                web listen address in format [host]:[port] (web only)
func parseFlags(name string, args []string, withServerFlags bool) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var serverAddress NetAddress
	var apiURL string
	var layout string
	var requestTimeout time.Duration
	var logLevel string
	var envFile string
	var configPath string

	fs.StringVar(&apiURL, "api-url", "", "People API base URL")
	fs.StringVar(&layout, "layout", "", "Layout: compact or full")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&envFile, "env-file", "", ".env file path")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	if withServerFlags {
		fs.Var(&serverAddress, "a", "Net address host:port")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Layout: layout,
		},
		Adapter: Adapter{
			HTTPAddress:    apiURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Log: Log{
			Level: logLevel,
		},
		EnvFile:        envFile,
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
