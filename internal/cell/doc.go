// Package cell parses the text printed by "iwlist <iface> scan" into access
// point records.
//
// Parsing runs in three steps. [Classify] maps a single line to the field it
// carries. [Parse] folds classified lines into [Cell] values: an Address line
// opens a cell and the ESSID line closes it, so a cell whose ESSID never
// shows up is dropped. An optional [Filter] is applied when a cell closes.
// [Sort] then orders the finished cells by a list of field keys.
//
// The parser is deliberately lenient. Lines it does not recognize are
// skipped and fields may arrive in any order within a cell.
package cell
