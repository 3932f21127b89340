// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kosyrev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing key and the database DSN are secrets with no built-in
// default, so their absence aborts startup here rather than surfacing later
// as unverifiable tokens or failed connections.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
