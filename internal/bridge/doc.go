// Package bridge holds the translation steps shared by every backend:
// brush resolution, deferred error recording, shape streaming, transform
// conversion and raw pixel decoding.
package bridge
