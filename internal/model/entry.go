// Package model defines the data structures for benchmark result analysis.
package model

// Path represents a file system path.
type Path string

// Entry identifies one benchmark run of a single model.
type Entry struct {
	Dir      Path    // directory segment under the benchmarks root
	Label    string  // display name; equals Dir when directories are passed explicitly
	PassRate float64 // fraction in [0,1], used only for ranking
}
