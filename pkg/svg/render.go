package svg

import (
	"reflect"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/svglet/pkg/logging"
)

var log = logging.GetLogger("svg")

// Options controls rendering. The zero value produces compact output: one
// unbroken line with no inserted whitespace.
type Options struct {
	// Pretty indents nested tags by two spaces per level and terminates
	// each tag with a newline.
	Pretty bool
}

// Renderer serializes descriptions to markup. Its logger receives the
// diagnostics for recoverable faults (malformed repeat sources); inject one
// with NewRenderer to assert on them in tests.
type Renderer struct {
	log zerolog.Logger
}

// NewRenderer returns a Renderer that reports diagnostics to logger.
func NewRenderer(logger zerolog.Logger) *Renderer {
	return &Renderer{log: logger}
}

// Render serializes desc as a compact SVG document using the package logger
// for diagnostics.
func Render(desc Node) string {
	return (&Renderer{log: log}).Render(desc, Options{})
}

// RenderPretty serializes desc with two-space indentation.
func RenderPretty(desc Node) string {
	return (&Renderer{log: log}).Render(desc, Options{Pretty: true})
}

// Render serializes desc as the root svg element. The xmlns attribute is
// always prepended ahead of the caller's fields; a caller-supplied xmlns is
// not merged with it and would be emitted again as an ordinary attribute.
// The result is trimmed of leading and trailing whitespace.
func (r *Renderer) Render(desc Node, opts Options) string {
	root := make(Node, 0, len(desc)+1)
	root = append(root, Field{Key: "xmlns", Value: Namespace})
	root = append(root, desc...)
	return strings.TrimSpace(r.renderNode("svg", root, nil, opts, 0))
}

// renderValue renders a structural field's value, which may be a single
// Node, a []Node sibling sequence, or a Computed resolving to either.
// Siblings share the tag name and context and are concatenated in order.
func (r *Renderer) renderValue(tag string, value any, ctx *Context, opts Options, depth int) string {
	switch v := Resolve(value, ctx).(type) {
	case Node:
		return r.renderNode(tag, v, ctx, opts, depth)
	case []Node:
		var b strings.Builder
		for _, n := range v {
			b.WriteString(r.renderNode(tag, n, ctx, opts, depth))
		}
		return b.String()
	default:
		r.log.Error().Str("tag", tag).Msg("structural value is not a description node, skipping")
		return ""
	}
}

func (r *Renderer) renderNode(tag string, node Node, ctx *Context, opts Options, depth int) string {
	if source, rest, ok := splitRepeat(node); ok {
		return r.renderRepeat(tag, source, rest, ctx, opts, depth)
	}

	p := partition(node)
	if p.hasCond && !isTruthy(Resolve(p.cond, ctx)) {
		return ""
	}

	var text, raw any
	if p.hasText {
		text = Resolve(p.text, ctx)
	}
	if p.hasRaw {
		raw = Resolve(p.raw, ctx)
	}
	hasText := p.hasText && text != nil
	hasRaw := p.hasRaw && raw != nil

	var ind, childInd, nl string
	if opts.Pretty {
		ind = strings.Repeat("  ", depth)
		childInd = ind + "  "
		nl = "\n"
	}

	var b strings.Builder
	b.WriteString(ind)
	b.WriteString("<")
	b.WriteString(tag)
	for _, f := range p.attrs {
		v := Resolve(f.Value, ctx)
		// nil and false express a conditional attribute; zero values
		// like 0 and "" are still emitted.
		if v == nil || v == false {
			continue
		}
		b.WriteString(" ")
		b.WriteString(f.Key)
		b.WriteString(`="`)
		b.WriteString(EscapeAttr(v))
		b.WriteString(`"`)
	}

	// Text leaves stay on one line so no whitespace is injected into the
	// rendered glyph run, even in pretty mode.
	if tag == "text" && hasText {
		b.WriteString(">")
		b.WriteString(EscapeText(text))
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteString(">")
		b.WriteString(nl)
		return b.String()
	}

	if len(p.children) == 0 && !hasText && !hasRaw {
		b.WriteString("/>")
		b.WriteString(nl)
		return b.String()
	}

	b.WriteString(">")
	b.WriteString(nl)
	for _, f := range p.children {
		b.WriteString(r.renderValue(f.Key, f.Value, ctx, opts, depth+1))
	}
	if hasText {
		b.WriteString(childInd)
		b.WriteString(EscapeText(text))
		b.WriteString(nl)
	}
	if hasRaw {
		b.WriteString(childInd)
		b.WriteString(Stringify(raw))
		b.WriteString(nl)
	}
	b.WriteString(ind)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(nl)
	return b.String()
}

// renderRepeat expands a $for directive: one fresh Context per item, parent
// pointing at the context active when the repeat was entered. A source that
// does not resolve to a sequence is a recoverable fault; the node
// contributes nothing and a diagnostic is logged.
func (r *Renderer) renderRepeat(tag string, source any, rest Node, ctx *Context, opts Options, depth int) string {
	items, ok := toSlice(Resolve(source, ctx))
	if !ok {
		r.log.Error().
			Str("tag", tag).
			Str("directive", DirFor).
			Msg("repeat source did not resolve to a sequence, skipping node")
		return ""
	}
	var b strings.Builder
	for i, item := range items {
		child := &Context{Item: item, Index: i, Items: items, Parent: ctx}
		b.WriteString(r.renderNode(tag, rest, child, opts, depth))
	}
	return b.String()
}

// slots is a Node partitioned into explicit classes, so emission switches on
// tags instead of re-deriving classification per key.
type slots struct {
	attrs    []Field
	children []Field
	cond     any
	hasCond  bool
	text     any
	hasText  bool
	raw      any
	hasRaw   bool
}

func partition(node Node) slots {
	var p slots
	for _, f := range node {
		switch Classify(f.Key) {
		case ClassStructural:
			p.children = append(p.children, f)
		case ClassDirective:
			switch f.Key {
			case DirIf:
				p.cond, p.hasCond = f.Value, true
			case DirText:
				p.text, p.hasText = f.Value, true
			case DirHTML:
				p.raw, p.hasRaw = f.Value, true
			case DirKey:
				// reserved, no rendering effect
			}
		default:
			p.attrs = append(p.attrs, f)
		}
	}
	return p
}

// splitRepeat extracts the $for directive, returning the node's remaining
// fields. The repeat key itself must not survive into the per-item render.
func splitRepeat(node Node) (source any, rest Node, ok bool) {
	for i, f := range node {
		if f.Key == DirFor {
			rest = make(Node, 0, len(node)-1)
			rest = append(rest, node[:i]...)
			rest = append(rest, node[i+1:]...)
			return f.Value, rest, true
		}
	}
	return nil, nil, false
}

// isTruthy decides $if: nil, false, numeric zero, and the empty string skip
// the node; everything else renders it.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return true
}

// toSlice normalizes a repeat source to []any. Strings are not sequences
// here; only slices and arrays repeat.
func toSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
