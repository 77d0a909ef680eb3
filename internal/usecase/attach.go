package usecase

// distinctKeys collects the distinct foreign keys of a record slice,
// preserving first-seen order.
func distinctKeys[R any, K comparable](records []R, key func(*R) K) []K {
	seen := make(map[K]struct{}, len(records))
	keys := make([]K, 0, len(records))
	for i := range records {
		k := key(&records[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// attachByKey joins a related entity onto each record by foreign key: one
// batched fetch produced byKey, and every record whose key is missing from
// the batch gets the fallback value instead. Used for post→author and the
// other "record + related summary" shapes.
func attachByKey[R any, E any, K comparable](records []R, key func(*R) K, byKey map[K]E, fallback func(K) E, assign func(*R, E)) {
	for i := range records {
		k := key(&records[i])
		related, ok := byKey[k]
		if !ok {
			related = fallback(k)
		}
		assign(&records[i], related)
	}
}
