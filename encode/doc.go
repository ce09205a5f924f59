// Package encode renders ir.Value trees as JSON text.
//
// The style is controlled by a Config; Default, Compact and Pretty are
// the canonical presets. Compact output round-trips exactly through
// the parse package, the other presets trade precision for
// readability.
//
// Arrays whose elements are all leaves render on one line when
// InlineSimpleArrays is set and the rendered text fits within
// MaxInlineLength; otherwise one element per line. Objects render one
// member per line, in insertion order, or sorted when SortKeys is set.
//
// NaN and infinite numbers have no JSON representation and are hard
// errors. Filter them first with ir.CleanNaN if the tree may contain
// them.
package encode
