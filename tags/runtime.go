package tags

// RuntimeNamespace is the namespace of the browser runtime every
// generated module imports.
const RuntimeNamespace = "lisplet.dom"

// RuntimeInit is the qualified name of the runtime entry point a page
// module hands its body forms to.
const RuntimeInit = RuntimeNamespace + "/init"

// primitives is the non-constructor half of the runtime surface: the
// page bootstrapper plus the node model accessors and the traversal
// helper.
var primitives = []string{
	"init",
	"dom",
	"node",
	"tag",
	"attrs",
	"children",
	"text",
	"walk",
}

// Primitives returns the runtime primitive names in their declared
// order.
func Primitives() []string {
	out := make([]string, len(primitives))
	copy(out, primitives)

	return out
}

// RuntimeSurface returns every identifier exported by the runtime
// namespace: one element constructor per registry entry, pseudo-tags
// included, followed by the primitives. The constructor portion is
// sorted so generated imports are stable.
func RuntimeSurface() []string {
	names := All()

	return append(names, primitives...)
}
