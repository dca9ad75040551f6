// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

This flavor of map is crucial in keeping the output of sti deterministic and
stable: resolved values are listed in declaration order and layered inputs keep
the order in which they were supplied.
*/
package orderedmap
