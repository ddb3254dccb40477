// Package host is the registry a front end drives editors through: a map
// from editor ids to Editor facades, and one method per command that takes
// an id. It owns only the editor map and the id-based dispatch; wire
// framing and serialization belong to the front end.
//
// The map itself is guarded by a single sync.RWMutex (lookups, Ids and Len
// take the read lock; Create/Close take the write lock), while per-editor
// mutation is serialized by that Editor's own mutex, so at most one
// mutator touches a given editor at a time without unrelated editors
// contending on one lock.
package host
