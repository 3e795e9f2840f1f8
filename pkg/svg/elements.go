package svg

// Namespace is injected as the xmlns attribute of every rendered root.
const Namespace = "http://www.w3.org/2000/svg"

// elements is the closed allowlist of SVG element names that may appear as
// structural keys in a Node. Anything absent here is treated as an
// attribute, so data fields that happen to look like tag names cannot
// accidentally nest.
var elements = map[string]struct{}{
	// document structure
	"svg":           {},
	"g":             {},
	"defs":          {},
	"symbol":        {},
	"use":           {},
	"switch":        {},
	"foreignObject": {},
	"a":             {},
	"view":          {},

	// shapes
	"rect":     {},
	"circle":   {},
	"ellipse":  {},
	"line":     {},
	"polyline": {},
	"polygon":  {},
	"path":     {},

	// text
	"text":     {},
	"tspan":    {},
	"textPath": {},

	// metadata
	"title":    {},
	"desc":     {},
	"metadata": {},
	"style":    {},

	// painting
	"image":          {},
	"marker":         {},
	"clipPath":       {},
	"mask":           {},
	"pattern":        {},
	"linearGradient": {},
	"radialGradient": {},
	"stop":           {},

	// filters
	"filter":              {},
	"feBlend":             {},
	"feColorMatrix":       {},
	"feComponentTransfer": {},
	"feComposite":         {},
	"feConvolveMatrix":    {},
	"feDiffuseLighting":   {},
	"feDisplacementMap":   {},
	"feDistantLight":      {},
	"feDropShadow":        {},
	"feFlood":             {},
	"feFuncA":             {},
	"feFuncB":             {},
	"feFuncG":             {},
	"feFuncR":             {},
	"feGaussianBlur":      {},
	"feImage":             {},
	"feMerge":             {},
	"feMergeNode":         {},
	"feMorphology":        {},
	"feOffset":            {},
	"fePointLight":        {},
	"feSpecularLighting":  {},
	"feSpotLight":         {},
	"feTile":              {},
	"feTurbulence":        {},

	// animation
	"animate":          {},
	"animateMotion":    {},
	"animateTransform": {},
	"set":              {},
	"mpath":            {},
}

// IsElement reports whether key names a nestable SVG element.
func IsElement(key string) bool {
	_, ok := elements[key]
	return ok
}
