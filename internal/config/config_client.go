package config

import (
	"fmt"
	"time"
)

// ClientApp holds presentation settings for a front end.
type ClientApp struct {
	// Layout is "compact" or "full". Empty means the front end's default.
	Layout string
	// Version is the application version shown in the build info.
	Version string
}

// ClientAdapter holds network settings used by the people API adapter.
type ClientAdapter struct {
	// HTTPAddress is the people API base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests; zero disables it.
	RequestTimeout time.Duration
}

// ClientLog holds logger settings.
type ClientLog struct {
	Level string
}

// ClientServer holds the web front end listen address.
type ClientServer struct {
	HTTPAddress string
}

// ClientConfig is the configuration of the terminal front end assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Log     ClientLog
}

// WebConfig is the configuration of the web front end assembled from
// [StructuredConfig].
type WebConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Log     ClientLog
	Server  ClientServer
}

// GetClientConfig builds and validates the terminal front end configuration.
// args are the command-line arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig("client", args, false)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     clientApp(cfg),
		Adapter: clientAdapter(cfg),
		Log:     ClientLog{Level: cfg.Log.Level},
	}

	return clientCfg, clientCfg.validate()
}

// GetWebConfig builds and validates the web front end configuration.
// args are the command-line arguments without the program name.
func GetWebConfig(args []string) (*WebConfig, error) {
	cfg, err := GetStructuredConfig("web", args, true)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	address := cfg.Server.HTTPAddress
	if address == "" {
		address = DefaultServerAddress
	}

	webCfg := &WebConfig{
		App:     clientApp(cfg),
		Adapter: clientAdapter(cfg),
		Log:     ClientLog{Level: cfg.Log.Level},
		Server:  ClientServer{HTTPAddress: address},
	}

	return webCfg, webCfg.validate()
}

func clientApp(cfg *StructuredConfig) ClientApp {
	return ClientApp{
		Layout:  cfg.App.Layout,
		Version: cfg.App.Version,
	}
}

func clientAdapter(cfg *StructuredConfig) ClientAdapter {
	return ClientAdapter{
		HTTPAddress:    cfg.apiURL(),
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}
}
