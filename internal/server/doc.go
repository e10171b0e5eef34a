// Package server exposes the board over a local HTTP API.
//
// The service is single-user: it owns one board, serializes every request
// through one lock, and keeps no sessions. A canvas front end drives the
// store actions, the batched canvas change channel, and the drag protocol
// through the endpoints here; the workflow endpoints cover snapshot
// download and restore.
//
// Store actions keep their silent no-op semantics over the wire: a mutation
// against a stale id answers 204 with nothing changed, the same way the
// in-process store degrades. Only malformed requests and workflow documents
// that fail validation produce error statuses.
package server
