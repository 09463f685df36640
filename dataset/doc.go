// Package dataset loads and generates the point sets the mfc-* binaries
// feed into the harness: line-delimited strings and integer sets read from
// disk, HDF5 vector datasets, and synthetic uniform/Gaussian vector
// generators matching the original uniform.cpp/gaussian.cpp drivers.
package dataset
