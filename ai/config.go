// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"fmt"
	"strings"
)

// Config holds settings for embedding providers.
//
// A remote legal-domain-tuned model is preferred; a local general-purpose
// OpenAI-compatible endpoint serves as fallback. Either may be left
// unconfigured, in which case its tier is simply absent from the chain.
type Config struct {
	// RemoteAPIKey authenticates against the remote embedding service.
	// Empty disables the remote tier.
	RemoteAPIKey string

	// RemoteModel is the remote model identifier.
	// Example: "voyage-law-2"
	RemoteModel string

	// LocalHost is the base URL of a local OpenAI-compatible embedding
	// service. Example: "http://localhost:11434/v1"
	LocalHost string

	// LocalModel is the local model identifier.
	// Example: "embeddinggemma", "text-embedding-3-small"
	LocalModel string
}

// ConfigOption mutates a Config.
type ConfigOption func(*Config)

// WithRemoteAPIKey sets the remote embedding service API key.
func WithRemoteAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.RemoteAPIKey = key
	}
}

// WithRemoteModel sets the remote model identifier.
func WithRemoteModel(model string) ConfigOption {
	return func(c *Config) {
		c.RemoteModel = model
	}
}

// WithLocalHost sets the local embedding service host URL.
func WithLocalHost(host string) ConfigOption {
	return func(c *Config) {
		c.LocalHost = host
	}
}

// WithLocalModel sets the local embedding model identifier.
func WithLocalModel(model string) ConfigOption {
	return func(c *Config) {
		c.LocalModel = model
	}
}

// DefaultConfig returns a Config preferring the legal-tuned remote model
// with a local OpenAI-compatible service as fallback. The remote API key
// has no default; without one only the local tier is built.
func DefaultConfig() *Config {
	return &Config{
		RemoteModel: "voyage-law-2",
		LocalHost:   "http://localhost:11434/v1",
		LocalModel:  "embeddinggemma",
	}
}

// NewConfig creates a Config with default values and applies the options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in canonical form. The local host
// gains a /v1 suffix when missing, which OpenAI-compatible APIs (Ollama,
// LocalAI, vLLM) require.
func (c *Config) Normalize() {
	if c.LocalHost != "" && !strings.HasSuffix(c.LocalHost, "/v1") {
		c.LocalHost = strings.TrimSuffix(c.LocalHost, "/") + "/v1"
	}
}

// Validate checks that each configured tier is complete. A config with no
// tiers at all is valid; callers then run without embeddings.
func (c *Config) Validate() error {
	if c.RemoteAPIKey != "" && c.RemoteModel == "" {
		return fmt.Errorf("%w: remote API key set without a remote model", ErrIncompleteConfig)
	}
	if (c.LocalHost == "") != (c.LocalModel == "") {
		return fmt.Errorf("%w: local host and local model must be set together", ErrIncompleteConfig)
	}
	return nil
}

// HasRemote reports whether the remote tier is configured.
func (c *Config) HasRemote() bool {
	return c.RemoteAPIKey != "" && c.RemoteModel != ""
}

// HasLocal reports whether the local tier is configured.
func (c *Config) HasLocal() bool {
	return c.LocalHost != "" && c.LocalModel != ""
}
