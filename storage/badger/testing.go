package badger

// NewMemoryStore creates an in-memory cache repository for testing.
// Closing the repository closes its backend.
func NewMemoryStore(namespace string) (*CacheRepository, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	repo := NewCacheRepository(backend, namespace)
	repo.ownsDB = true
	return repo, nil
}
