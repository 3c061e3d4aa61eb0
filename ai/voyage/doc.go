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

// Package voyage provides embedding generation using the Voyage AI API.
//
// This is the preferred remote tier: voyage-law-2 is trained on legal text
// and produces noticeably better retrieval for statute and case-law queries
// than general-purpose models. Wrap it with ai.WithBreaker when building a
// chain so a degraded remote service fails fast to the local tier.
package voyage
