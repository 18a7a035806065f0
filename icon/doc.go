// Package icon renders and selects the tray icons.
//
// Icons are small PNGs generated programmatically, one per profile and
// appearance mode, plus a generic badge used when no profile-specific
// icon applies. The bundled set is materialized into the user's data
// directory at startup so users can inspect it and supply overrides with
// the same layout:
//
//	<dir>/light/performance.png
//	<dir>/light/balanced.png
//	<dir>/light/power-saver.png
//	<dir>/dark/...
//
// Selection walks override directory, bundled directory, then the
// built-in generic icon, so it always produces a usable image.
package icon
