// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package texttemplate parses sti source text into a template.Body.

Source consists of declarations in braces, an arrow and the template body:

	{name, greeting ? "Hello"} ->
	%{greeting}, %{name}! 100%% done.

Whitespace is insignificant up to and including the arrow; a single line
break right after the arrow is dropped. Everything after that is template
text where %{var} inserts a variable and %% produces a literal percent sign.
*/
package texttemplate
