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

// Package search provides the hybrid retrieval-and-fusion engine.
//
// The Engine type implements a multi-stage ranking pipeline that combines:
//   - Semantic search using vector embeddings, per namespace
//   - Lexical search using a term-frequency ranking model
//   - Metadata facet scoring against inferred or supplied filters
//
// Candidates from both retrieval channels are merged by document identity,
// scored as a weighted sum of normalized channel scores, boosted by recency,
// and re-ranked for diversity and query-specific relevance. Every search is
// recorded in a capped in-memory history log for analytics.
package search
