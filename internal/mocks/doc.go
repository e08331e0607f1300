// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one of the application's service or store
// interfaces with injectable function fields, plus simple in-memory
// defaults, so tests can share the same implementations instead of
// defining inline mocks per test file.
package mocks
