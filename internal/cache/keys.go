package cache

// Cache key prefixes.
const (
	PrefixSavedQueries = "savedqueries:"
)

// MakeSavedQueriesKey creates a cache key for a session's saved-query
// catalog. Keyed per session so entries expire with the sessions that loaded
// them.
func MakeSavedQueriesKey(remoteSession string) string {
	return PrefixSavedQueries + remoteSession
}
