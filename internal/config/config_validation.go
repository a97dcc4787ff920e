// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks the settings shared by both front ends.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}

func validateAdapter(adapter ClientAdapter) error {
	u, err := url.Parse(adapter.HTTPAddress)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api url %q must be an absolute http(s) URL", ErrInvalidAdapterConfigs, adapter.HTTPAddress)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	return validateAdapter(cfg.Adapter)
}

func (cfg *WebConfig) validate() error {
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}

	var addr NetAddress
	if err := addr.Set(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	return nil
}
