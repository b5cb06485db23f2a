// Package paths resolves the per-user directories folio reads and writes,
// following the XDG Base Directory conventions through github.com/adrg/xdg.
//
//	paths.ConfigDir()      // $FOLIO_CONFIG_DIR or ~/.config/folio
//	paths.DefaultLogFile() // ~/.local/state/folio/folio.log
//
// It also normalizes user-supplied paths from config and flags with
// [ExpandHome] and [Clean].
package paths
