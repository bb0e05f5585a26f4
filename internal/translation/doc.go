// Package translation provides the language detection and machine
// translation services used by the pipeline. Providers wrap Google
// Translate, OpenAI, Gemini and Anthropic; decorators add caching, a
// circuit breaker, rate limiting, provider fallback and local detection.
package translation
