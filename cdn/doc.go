// Package cdn implements the cdn command group: browsing, uploading and
// signing URLs for files kept in an object store.  Storage access goes
// through github.com/viant/afs so any afs scheme can back the CDN; the first
// folder level below the configured base URL plays the role of containers.
package cdn
