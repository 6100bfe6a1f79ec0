// Package config defines the format-agnostic credential model for the
// application, along with the Loader interface for reading it from a
// local file.
//
// Concrete implementations of the interface, such as for INI and HCL
// files, are provided in separate packages.
package config
