// Package workflow provides JSON export and import for board snapshots.
//
// # Overview
//
// This package serializes the full board state (categories with their
// ordered clues, connections, and node positions) to and from a flat
// interchange document. The format is designed for:
//
//   - Save-to-file of an investigation board as a single JSON document
//   - Reload: import is the precise structural inverse of export
//   - Integration with external tools that produce or consume board data
//   - Round-trip preservation: export, re-import, and export identically
//
// # JSON Format
//
// The document has two top-level arrays:
//
//	{
//	  "categories": [
//	    {
//	      "id": "evidence",
//	      "title": "Evidence",
//	      "position": {"x": 120, "y": 80},
//	      "clues": [
//	        {"id": "c1", "categoryId": "evidence", "content": "Fingerprint"}
//	      ]
//	    }
//	  ],
//	  "connections": [
//	    {"id": "k1", "source": "evidence", "target": "suspects",
//	     "sourceHandle": "right", "targetHandle": "left"}
//	  ]
//	}
//
// Clue order inside a category is significant and preserved exactly.
// A clue's media type is never persisted: it is derived from the content
// string by [media.Classify] wherever it is needed, so the stored document
// stays authoritative for content only.
//
// # Identifiers
//
// Historical documents carry clue and category ids as either JSON strings
// or JSON numbers. Import normalizes every id to its canonical string form,
// so a numeric id 42 and the string "42" address the same entity.
//
// # Import
//
// Use [ImportFile] to read a document from a file path, or [ReadJSON] to
// read from any io.Reader. Both validate the structure (duplicate ids,
// connection endpoints referencing unknown categories) and return a fresh
// independent [board.Board]. Errors carry codes from the errors package.
//
// # Export
//
// Use [ExportFile] to write a board to a file, or [WriteJSON] to write to
// any io.Writer. [Filename] returns the conventional download name,
// workflow-<ISO-date>.json.
//
// [media.Classify]: github.com/matzehuels/clueboard/pkg/media.Classify
package workflow
