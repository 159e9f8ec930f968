package inmemorycache

// Len reports the number of stored entries, expired or not.
func (m *InMemoryCache) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.cache)
}
