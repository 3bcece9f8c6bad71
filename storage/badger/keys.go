package badger

// Key layout. Each namespace holds one cache record and its save timestamp.
const (
	cacheRecordPrefix = "cache"
	cacheSavedPrefix  = "cachets"
	defaultNamespace  = "default"
)

// makeCacheKey generates the key holding the encoded record for a namespace.
func makeCacheKey(namespace string) []byte {
	return []byte(cacheRecordPrefix + ":" + namespace)
}

// makeCacheSavedKey generates the key holding the last save time for a namespace.
func makeCacheSavedKey(namespace string) []byte {
	return []byte(cacheSavedPrefix + ":" + namespace)
}
