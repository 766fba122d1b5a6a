// Package cache stores rendered artifacts.
//
// Three [Cache] implementations are provided:
//
//   - [NullCache]: never stores anything (--no-cache)
//   - [FileCache]: one file per artifact under the user cache directory (CLI)
//   - [RedisCache]: a shared Redis instance (selected by DRAWKIT_REDIS_URL)
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the document hash and
// the render options, so any change to either yields a new key;
// [WithNamespace] prefixes keys for caches shared between servers.
package cache
