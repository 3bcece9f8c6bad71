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

package storage

import (
	"fmt"

	"github.com/poiesic/faqit/core"
)

// MarshalCacheRecord serializes a CacheRecord to bytes.
func MarshalCacheRecord(record *core.CacheRecord) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: nil record", ErrSerializationFailed)
	}
	buf := make([]byte, CacheRecordMUS.Size(*record))
	n := CacheRecordMUS.Marshal(*record, buf)
	return buf[:n], nil
}

// UnmarshalCacheRecord deserializes a CacheRecord from bytes.
// Input with trailing bytes is rejected.
func UnmarshalCacheRecord(data []byte) (*core.CacheRecord, error) {
	record, n, err := CacheRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrSerializationFailed, len(data)-n)
	}
	return &record, nil
}
