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

// Package storage provides the storage abstraction layer for nyaya.
//
// This package defines repository interfaces that decouple storage
// implementation from retrieval logic. Two concerns are separated:
//
//   - DocumentRepository: durable document storage, keyed by namespace and ID
//   - VectorIndex: nearest-neighbour search over embedding vectors
//
// The badger subpackage implements both on a single embedded BadgerDB, which
// is the default deployment. The redis subpackage implements VectorIndex on
// Redis with RediSearch for installations that already run Redis and want
// HNSW-accelerated search over large corpora.
//
// # Constructor Return Type Pattern
//
// Public constructors return interfaces to enforce abstraction and keep
// backends swappable:
//
//	repo, err := badger.NewDocumentRepository(backend) // returns storage.DocumentRepository
//
// Internal constructors may return concrete types since they're only used
// within the implementation package.
//
// # Usage
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	repo := badger.NewDocumentRepository(backend)
//
// Use in tests with in-memory storage:
//
//	backend, err := badger.OpenBackend("", true)
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
