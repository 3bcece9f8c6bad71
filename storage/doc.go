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

// Package storage provides the persistence layer for the embedding cache.
//
// The cache is a single versioned record (core.CacheRecord) encoded with the
// MUS binary format. This package owns the codec and the CacheStore interface;
// backends live in sub-packages:
//
//   - storage/file: one file on local disk, replaced by atomic rename
//   - storage/badger: one key in a BadgerDB database
//   - storage/valkey: one key on a Valkey (or Redis) server
//
// # Constructor Return Type Pattern
//
// Public backend constructors return the storage.CacheStore interface:
//
//	store, err := file.NewStore("/var/lib/faqit/embeddings.cache")  // storage.CacheStore
//
// Internal constructors may return concrete types.
//
// # Record Format
//
// A record starts with a schema version byte. Decoding rejects foreign
// versions with ErrUnsupportedVersion and short or oversized input with
// ErrTruncatedData or ErrSerializationFailed. Stored bytes are untrusted
// until decoded and validated.
//
// # Thread Safety
//
// All CacheStore implementations must be thread-safe.
package storage
