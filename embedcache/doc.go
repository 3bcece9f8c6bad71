// Package embedcache keeps corpus embeddings across restarts.
//
// A cached record is trusted only when its schema version, corpus
// fingerprint, model identity and entry count all match the current state.
// Anything else, including undecodable bytes, is a miss: the whole record is
// regenerated and saved again. There are no partial updates.
//
//	cache := embedcache.New(store)
//	record, regenerated, err := cache.Ensure(ctx, corp, provider.ModelIdentity(), regen.Run)
package embedcache
