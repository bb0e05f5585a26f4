package translation

import (
	"context"
	"sync"
)

// TranslationCache stores translations per text and target language
type TranslationCache struct {
	mu           sync.RWMutex
	translations map[cacheKey]string
}

type cacheKey struct {
	text   string
	target string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[cacheKey]string),
	}
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(text, target, translation string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.translations[cacheKey{text, target}] = translation
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(text, target string) (string, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	translation, ok := tc.translations[cacheKey{text, target}]
	return translation, ok
}

// Len returns the number of cached translations
func (tc *TranslationCache) Len() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return len(tc.translations)
}

// CachedService answers repeated translations from a cache. Failed
// translations are not cached. Detection is passed through.
type CachedService struct {
	next  Service
	cache *TranslationCache
}

// NewCachedService wraps next with cache
func NewCachedService(next Service, cache *TranslationCache) *CachedService {
	return &CachedService{next: next, cache: cache}
}

// Name returns the wrapped service name
func (s *CachedService) Name() string {
	return s.next.Name()
}

// Detect detects the language of text
func (s *CachedService) Detect(ctx context.Context, text string) (string, error) {
	return s.next.Detect(ctx, text)
}

// Translate returns the cached translation or asks the wrapped service
func (s *CachedService) Translate(ctx context.Context, text, target string) (string, error) {
	if translation, ok := s.cache.Get(text, target); ok {
		return translation, nil
	}

	translation, err := s.next.Translate(ctx, text, target)
	if err != nil {
		return "", err
	}
	s.cache.Add(text, target, translation)
	return translation, nil
}
