package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a config file. The same field names are
// used for JSON and YAML.
type fileConfig struct {
	App struct {
		Layout  string `json:"layout" yaml:"layout"`
		Version string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Adapter struct {
		APIURL         string   `json:"api_url" yaml:"api_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Server struct {
		HTTPAddress string `json:"http_address" yaml:"http_address"`
	} `json:"server" yaml:"server"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

// parseFile reads a JSON or YAML config file, chosen by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", "":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}

	return &StructuredConfig{
		App: App{
			Layout:  fileCfg.App.Layout,
			Version: fileCfg.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.APIURL,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Server: Server{
			HTTPAddress: fileCfg.Server.HTTPAddress,
		},
		Log: Log{
			Level: fileCfg.Log.Level,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s", or from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
