// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks invariants shared by every consumer of the merged
// [StructuredConfig]. Durations must never be negative.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Keypad.HighlightDelay < 0 || cfg.Keypad.ShakeStep < 0 {
		return ErrInvalidKeypadConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Keypad.HighlightDelay <= 0 || cfg.Keypad.ShakeStep <= 0 {
		return ErrInvalidKeypadConfigs
	}

	return nil
}
