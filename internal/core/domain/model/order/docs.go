// Package order contains the Order aggregate and its supporting value
// objects: the Status taxonomy with its closed transition table, the
// normalized TrackNumber, and the immutable HistoryEntry audit record.
package order
