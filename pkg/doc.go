// Package pkg provides the core libraries for Clueboard investigation boards.
//
// # Overview
//
// Clueboard manages an investigation board: titled categories of clue cards
// laid out on a canvas and linked by connections. The pkg directory is
// organized into four main areas:
//
//  1. [board] - The state store (categories, clues, connections, canvas changes)
//  2. [drag] - Drag gesture resolution (reorder, cross-category move)
//  3. [workflow] - Snapshot export/import as JSON
//  4. [media] - Clue content classification and attachment fetching
//
// Supporting packages: [manifest] seeds boards from TOML case templates,
// [render] draws boards as diagrams, [httputil] provides the fetch cache
// and retries, [errors] the coded error types, [observability] the hook
// points, and [buildinfo] build metadata.
//
// # Architecture
//
// The typical data flow through Clueboard:
//
//	Drag/canvas events
//	         ↓
//	    [drag] package (resolve gesture intent)
//	         ↓
//	    [board] package (atomic store actions)
//	         ↓
//	    [workflow] package (snapshot export/import)
//	         ↓
//	    JSON workflow file / rendered diagram
//
// # Quick Start
//
//	b := board.New()
//	evidence := b.AddCategory("Evidence")
//	b.AddClue(evidence, "Fingerprint")
//	err := workflow.ExportFile(b, workflow.Filename(time.Now()))
package pkg
