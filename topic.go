package algokit

// Topic describes one topic area composed into the umbrella library.
//
// A topic is the basic building block of the library: a self-contained
// package implementing one family of data structures or algorithms. The
// descriptor carries what the registry needs to compose it, most
// importantly the names of the symbols the topic exports through the
// umbrella namespace.
//
// A topic with an empty Symbols slice is valid: it marks a topic area that
// exists and builds but has no public surface yet.
type Topic struct {
	// Name is the unique identifier for the topic, matching the package
	// name of the topic's implementation (for example "collections").
	Name string

	// Summary is the topic's one-line, module-level description.
	Summary string

	// Symbols lists the names this topic exports through the umbrella
	// namespace. Names must be unique within the topic and across all
	// registered topics.
	Symbols []string
}
