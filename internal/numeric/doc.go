// Package numeric holds constants and small helpers shared by every
// sparse-grid package: the point-identification tolerance, a bounded
// fork-join loop primitive, and float comparison helpers.
//
// Nothing here is specific to any one grid engine; it exists to avoid
// duplicating the same tolerance value or the same goroutine fan-out
// pattern in globalgrid, waveletgrid, tensorrefs and iodata.
package numeric
