package storage

import (
	"fmt"
	"math"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/faqit/core"
)

// CacheRecordMUS is the MUS serializer for core.CacheRecord.
//
// Layout: version byte, fingerprint (fixed 32 bytes), model identity,
// entry count, created-at in unix microseconds, vector count, then each
// vector as a length followed by raw float32 values.
var CacheRecordMUS = cacheRecordMUS{}

type cacheRecordMUS struct{}

const float32Size = 4

func (s cacheRecordMUS) Marshal(v core.CacheRecord, bs []byte) (n int) {
	bs[0] = v.Version
	n = 1
	n += copy(bs[n:], v.Fingerprint[:])
	n += ord.String.Marshal(v.ModelIdentity, bs[n:])
	n += varint.Int64.Marshal(int64(v.EntryCount), bs[n:])
	n += varint.Int64.Marshal(v.CreatedAt.UnixMicro(), bs[n:])
	n += varint.Uint64.Marshal(uint64(len(v.Vectors)), bs[n:])
	for _, vec := range v.Vectors {
		n += varint.Uint64.Marshal(uint64(len(vec)), bs[n:])
		for _, f := range vec {
			n += raw.Float32.Marshal(f, bs[n:])
		}
	}
	return
}

func (s cacheRecordMUS) Size(v core.CacheRecord) (size int) {
	size = 1 + core.FingerprintSize
	size += ord.String.Size(v.ModelIdentity)
	size += varint.Int64.Size(int64(v.EntryCount))
	size += varint.Int64.Size(v.CreatedAt.UnixMicro())
	size += varint.Uint64.Size(uint64(len(v.Vectors)))
	for _, vec := range v.Vectors {
		size += varint.Uint64.Size(uint64(len(vec)))
		size += len(vec) * float32Size
	}
	return
}

func (s cacheRecordMUS) Unmarshal(bs []byte) (v core.CacheRecord, n int, err error) {
	if len(bs) < 1 {
		return v, 0, ErrTruncatedData
	}
	v.Version = bs[0]
	n = 1
	if v.Version != core.CacheSchemaVersion {
		return v, n, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v.Version)
	}

	if len(bs)-n < core.FingerprintSize {
		return v, n, ErrTruncatedData
	}
	n += copy(v.Fingerprint[:], bs[n:n+core.FingerprintSize])

	var m int
	v.ModelIdentity, m, err = ord.String.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return v, n, fmt.Errorf("%w: model identity: %w", ErrTruncatedData, err)
	}

	var count int64
	count, m, err = varint.Int64.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return v, n, fmt.Errorf("%w: entry count: %w", ErrTruncatedData, err)
	}
	if count < 0 {
		return v, n, fmt.Errorf("%w: negative entry count", ErrSerializationFailed)
	}
	v.EntryCount = int(count)

	var micros int64
	micros, m, err = varint.Int64.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return v, n, fmt.Errorf("%w: created at: %w", ErrTruncatedData, err)
	}
	v.CreatedAt = time.UnixMicro(micros).UTC()

	var vecCount uint64
	vecCount, m, err = varint.Uint64.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return v, n, fmt.Errorf("%w: vector count: %w", ErrTruncatedData, err)
	}
	// Every vector needs at least its length prefix
	if vecCount > uint64(len(bs)-n) {
		return v, n, fmt.Errorf("%w: %d vectors in %d bytes", ErrTruncatedData, vecCount, len(bs)-n)
	}

	v.Vectors = make([]core.Vector, vecCount)
	for i := range v.Vectors {
		var dim uint64
		dim, m, err = varint.Uint64.Unmarshal(bs[n:])
		n += m
		if err != nil {
			return v, n, fmt.Errorf("%w: vector %d: %w", ErrTruncatedData, i, err)
		}
		if dim > uint64(len(bs)-n)/float32Size {
			return v, n, fmt.Errorf("%w: vector %d", ErrTruncatedData, i)
		}
		if dim == 0 {
			continue
		}
		vec := make(core.Vector, dim)
		for j := range vec {
			vec[j], m, err = raw.Float32.Unmarshal(bs[n:])
			n += m
			if err != nil {
				return v, n, fmt.Errorf("%w: vector %d: %w", ErrTruncatedData, i, err)
			}
			if f := float64(vec[j]); math.IsNaN(f) || math.IsInf(f, 0) {
				return v, n, fmt.Errorf("%w: vector %d: non-finite component %d", ErrSerializationFailed, i, j)
			}
		}
		v.Vectors[i] = vec
	}
	return
}
