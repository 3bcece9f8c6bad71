package core

import (
	"errors"
	"testing"
)

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *FAQEntry
		wantErr error
	}{
		{
			name:    "valid entry",
			entry:   &FAQEntry{ID: 1, Question: "How do I upload a photo?", Answer: "Use the upload button."},
			wantErr: nil,
		},
		{
			name:    "zero id is allowed",
			entry:   &FAQEntry{Question: "q", Answer: "a"},
			wantErr: nil,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "blank question",
			entry:   &FAQEntry{ID: 2, Question: "   ", Answer: "a"},
			wantErr: ErrEmptyQuestion,
		},
		{
			name:    "empty answer",
			entry:   &FAQEntry{ID: 3, Question: "q"},
			wantErr: ErrEmptyAnswer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.entry)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEntry() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEntry() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("ValidateEntry() error should wrap ErrInvalidEntry, got %v", err)
			}
		})
	}
}

func TestValidateCacheRecord(t *testing.T) {
	valid := NewCacheRecord(FingerprintOf([]byte("x")), "m", []Vector{{1}, {2}})

	tests := []struct {
		name    string
		record  *CacheRecord
		wantErr bool
	}{
		{"valid record", valid, false},
		{"nil record", nil, true},
		{"foreign version", &CacheRecord{Version: 99, EntryCount: 0}, true},
		{"count mismatch", &CacheRecord{Version: CacheSchemaVersion, EntryCount: 3, Vectors: []Vector{{1}}}, true},
		{"negative count", &CacheRecord{Version: CacheSchemaVersion, EntryCount: -1}, true},
		{"empty corpus", &CacheRecord{Version: CacheSchemaVersion}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCacheRecord(tt.record)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCacheRecord() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCacheRecord) {
				t.Errorf("ValidateCacheRecord() error should wrap ErrInvalidCacheRecord, got %v", err)
			}
		})
	}
}
