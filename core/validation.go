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

import (
	"fmt"
	"strings"
)

// ValidateEntry validates an FAQEntry according to domain rules.
//
// Validation rules:
//   - Question must not be blank
//   - Answer must not be blank
//
// NOT validated:
//   - ID (uniqueness is not enforced; lookups return the first match)
func ValidateEntry(entry *FAQEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if strings.TrimSpace(entry.Question) == "" {
		return fmt.Errorf("%w: id %d: %w", ErrInvalidEntry, entry.ID, ErrEmptyQuestion)
	}

	if strings.TrimSpace(entry.Answer) == "" {
		return fmt.Errorf("%w: id %d: %w", ErrInvalidEntry, entry.ID, ErrEmptyAnswer)
	}

	return nil
}

// ValidateCacheRecord checks the structural invariants of a CacheRecord.
// It does not compare against corpus or model state.
func ValidateCacheRecord(record *CacheRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidCacheRecord)
	}

	if record.Version != CacheSchemaVersion {
		return fmt.Errorf("%w: schema version %d", ErrInvalidCacheRecord, record.Version)
	}

	if record.EntryCount < 0 {
		return fmt.Errorf("%w: negative entry count", ErrInvalidCacheRecord)
	}

	if len(record.Vectors) != record.EntryCount {
		return fmt.Errorf("%w: %d vectors for %d entries",
			ErrInvalidCacheRecord, len(record.Vectors), record.EntryCount)
	}

	return nil
}
