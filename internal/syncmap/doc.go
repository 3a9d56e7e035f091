// Package syncmap offers a small generic map guarded by a sync.RWMutex. It
// backs the executor table of the portal actions.
package syncmap
