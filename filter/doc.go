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


// Package filter classifies queries into structured legal-metadata facets
// and scores documents against them.
//
// Facets are inferred from fixed keyword tables: legal domain, jurisdiction,
// court type, recency intent, explicit section/article numbers, and named
// act aliases. Each facet carries a boost weight that is summed over the
// filters a document matches. The package holds no document state.
package filter
