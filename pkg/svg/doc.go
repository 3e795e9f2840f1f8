/*
Package svg renders a declarative description of an SVG document to markup
text.

A description is an ordered list of fields. Each field is classified by its
key: keys matching a known SVG element name nest child descriptions, keys
starting with "$" are control directives, and everything else becomes an
attribute on the enclosing tag.

# A minimal document

	out := svg.Render(svg.Node{
		{"width", 100},
		{"height", 100},
	})
	// <svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"/>

# Computed values and repetition

Any field value may be a Computed function instead of a literal. Computed
values receive the active iteration Context, which the $for directive creates
once per repeated item:

	out := svg.Render(svg.Node{
		{"circle", svg.Node{
			{"$for", []int{10, 20, 30}},
			{"cx", svg.Computed(func(c *svg.Context) any { return c.Index * 30 })},
			{"cy", 50},
			{"r", svg.Computed(func(c *svg.Context) any { return c.Item })},
		}},
	})

# Directives

	$for   repeat the node once per item of a slice; creates a new Context
	$if    skip the node and its subtree when the value resolves falsy
	$text  escaped text content
	$html  raw content, inserted verbatim (caller is responsible for safety)
	$key   accepted for forward compatibility; has no effect on output

# Output modes

Render produces a compact single-line document. RenderPretty indents nested
tags by two spaces and terminates each tag with a newline. Both trim the
final result.

Malformed $for sources (anything that is not a slice or array) are not
errors: the node contributes nothing and a diagnostic is logged through the
renderer's logger, which is injectable via NewRenderer for testing.
*/
package svg
