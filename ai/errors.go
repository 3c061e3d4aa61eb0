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

import "errors"

var (
	// ErrNoProviders is returned when a chain is asked to embed with no
	// configured providers.
	ErrNoProviders = errors.New("no embedding providers configured")

	// ErrAllProvidersFailed is returned when every provider tier in a chain
	// failed for a request.
	ErrAllProvidersFailed = errors.New("all embedding providers failed")

	// ErrIncompleteConfig is returned when a provider tier is only partially
	// configured.
	ErrIncompleteConfig = errors.New("incomplete embedding configuration")
)
