// Package domain contains the core search model for novagrep: matchers,
// the search configuration, the line scanner and search results.
//
// The domain does not touch the filesystem, stdin or the terminal. Infra
// adapters resolve sources and pattern files and hand plain strings in.
package domain
