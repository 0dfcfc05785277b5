// Package iodata implements the text and binary stream codec shared by
// GlobalGrid's and WaveletGrid's persistence (spec §6): scalar
// primitives at 17-significant-digit scientific precision (text) or
// fixed-width int32/float64 (binary), plus the higher-level MultiIndexSet,
// dense-matrix, and custom-rule-table block encoders/decoders every
// grid's Save/Load builds on.
package iodata
