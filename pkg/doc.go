// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of sti.

Packages are layered so that each one depends on the others only to the
degree required. In the inventory below, individual packages are named
alongside their coupling with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

sti is built into a single command-line tool:

	./cmd/sti

# Commands

The root command evaluates templates. "check" only parses and verifies them.

	(1) => pkg/cmd => (2)
	(2) => pkg/cmd/template => (4)

# Templating

Evaluation is a fixed pipeline: parse, verify, resolve values, reduce.
Each step hands the next one a value that only it can construct, so a
template cannot be reduced without having been verified.

	(2) => pkg/eval => (2)
	(1) => pkg/texttemplate => (2)
	(4) => pkg/template => (3)

# Utilities

Domain-agnostic utilities that provide either an application-level
capability or a specialized piece of logic.

	(2) => pkg/files => (0)
	(2) => pkg/filepos => (0)
	(1) => pkg/cmd/ui => (0)
	(1) => pkg/orderedmap => (0)
	(1) => pkg/spell => (0)
	(1) => pkg/version => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/cmd/template
	- pkg/version
	pkg/cmd/template:
	- pkg/eval
	- pkg/files
	- pkg/cmd/ui
	- pkg/template
	pkg/eval:
	- pkg/texttemplate
	- pkg/template
	pkg/texttemplate:
	- pkg/template
	- pkg/filepos
	pkg/template:
	- pkg/spell
	- pkg/orderedmap
	- pkg/filepos
*/
package pkg
