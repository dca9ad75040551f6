// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package eval strings the engine together: source text is parsed, verified,
resolved against inputs and reduced to output.

Evaluate does it all at once. Prepare stops after verification so that one
source can be evaluated many times with different inputs.
*/
package eval
