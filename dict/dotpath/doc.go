// Package dotpath parses and prints dotted access paths into value trees.
//
// A path is a sequence of segments:
//   - name, .name - Object field
//   - 'odd.name', "esc\"aped" - quoted Object field
//   - [3] - Array index
//
// # Usage
//
//	p, err := dotpath.Parse("users[0].name")
//	for seg := range p.All() {
//	    if seg.Field != nil { ... }
//	}
//
// The empty string parses to the nil path, which denotes the root.
package dotpath
