package svg

// Node describes one element: an ordered list of fields whose keys are
// classified into attributes, child elements, and directives. Order is
// preserved in the output, so two renders of the same Node are
// byte-identical.
type Node []Field

// Field is one key/value slot of a Node. Value may be a literal, a Computed
// function, a nested Node, or a []Node sequence of siblings.
type Field struct {
	Key   string
	Value any
}

// Computed is a value derived from the active iteration context at render
// time. The renderer does not recover panics raised here; they propagate to
// the caller of Render.
type Computed func(*Context) any

// Context is the per-repeated-item record visible to Computed values. A new
// Context is created for every item of a $for directive; plain element
// nesting shares the enclosing Context. Contexts are never mutated after
// construction.
type Context struct {
	// Item is the current element of the repeated sequence.
	Item any
	// Index is the zero-based position of Item within Items.
	Index int
	// Items is the full sequence being iterated.
	Items []any
	// Parent is the Context that was active when the repeat was entered,
	// or nil at the outermost level. Parents form a chain, never a cycle.
	Parent *Context
}

// Directive keys. Keys are matched exactly; a "$"-prefixed key outside this
// set is an ordinary attribute.
const (
	DirFor  = "$for"  // repeat source
	DirIf   = "$if"   // condition
	DirText = "$text" // escaped text content
	DirHTML = "$html" // raw content, not escaped
	DirKey  = "$key"  // reconciliation key, accepted but unused
)

// Class is the render-time classification of a Node key.
type Class int

const (
	// ClassAttribute is the fallback: any key that is neither a known
	// element name nor a directive, including hyphenated attribute names.
	ClassAttribute Class = iota
	// ClassStructural marks keys naming a nestable SVG element.
	ClassStructural
	// ClassDirective marks the five reserved "$" keys.
	ClassDirective
)

// Classify assigns a key to exactly one class. Membership in the element
// allowlist is the single source of truth for what can nest; element-like
// keys outside it fall through to attribute.
func Classify(key string) Class {
	if IsElement(key) {
		return ClassStructural
	}
	switch key {
	case DirFor, DirIf, DirText, DirHTML, DirKey:
		return ClassDirective
	}
	return ClassAttribute
}

// Resolve evaluates a slot value against the active context. Computed values
// are invoked with ctx; everything else passes through unchanged.
func Resolve(value any, ctx *Context) any {
	switch fn := value.(type) {
	case Computed:
		return fn(ctx)
	case func(*Context) any:
		return fn(ctx)
	}
	return value
}
