// Package sqlite provides the diagnostics persistence adapter backed by SQLite.
//
// The store only holds failure reports; losing it never affects the board.
package sqlite
