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


package core

import "fmt"

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Namespace must be one of the known partitions
//
// NOT validated (populated later):
//   - Vector (can be empty until the ingestion pipeline embeds the document)
//   - ID (empty is valid; a content-hash ID is assigned at ingestion)
//   - Metadata (entirely optional, open schema)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyContent)
	}

	if !doc.Namespace.IsValid() {
		return fmt.Errorf("%w: %w %q", ErrInvalidDocument, ErrInvalidNamespace, doc.Namespace)
	}

	return nil
}
