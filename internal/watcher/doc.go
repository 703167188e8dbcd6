// Package watcher follows the shared group store directory and imports
// values other processes write there into the local store.
package watcher
