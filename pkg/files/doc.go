// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading data from various
file or file-like Source's and for writing output to filesystem files and
directories.

This allows the rest of sti code to work on template sources and values
without becoming entangled in the details of how to read or write data.

Values files are decoded differently depending on their Type (JSON, YAML or
TOML); all other files are treated as template sources.
*/
package files
