package anthropic

// CachedSystem wraps a static system prompt in a single block marked for
// ephemeral prompt caching. Repeated research calls share the same
// instructions, so later calls read them from cache.
func CachedSystem(text string) []SystemBlock {
	return []SystemBlock{{Text: text, CacheControl: &CacheControl{TTL: "5m"}}}
}
