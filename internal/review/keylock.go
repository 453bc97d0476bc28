package review

import "sync"

// keyLocks serializes submissions per (user, card) key within the
// process. The store's version check is the cross-process guard; this
// keeps in-process submissions from burning retries on each other.
// Locks are striped so the map stays bounded regardless of key count.
type keyLocks struct {
	stripes [64]sync.Mutex
}

func (kl *keyLocks) lock(userID, cardID string) *sync.Mutex {
	m := &kl.stripes[stripeIndex(userID, cardID)]
	m.Lock()
	return m
}

func stripeIndex(userID, cardID string) int {
	// FNV-1a over both key parts.
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, s := range []string{userID, "\x00", cardID} {
		for i := 0; i < len(s); i++ {
			h ^= uint64(s[i])
			h *= prime
		}
	}
	return int(h % 64)
}
