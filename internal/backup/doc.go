// Package backup keeps copies of content files before folio overwrites
// them, and restores them on request.
//
// Each backup is a timestamped directory holding the copied file and a
// manifest with its SHA256 hash:
//
//	<state>/folio/backups/
//	└── {kind}/
//	    └── {slug}/
//	        └── {id}/
//	            ├── manifest.json
//	            └── {file name}
//
// IDs sort chronologically. [Manager.Backup] prunes all but the newest
// retention-count backups of an entry, and [Manager.Restore] refuses to
// copy back a file whose hash no longer matches its manifest.
package backup
