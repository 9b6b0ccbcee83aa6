// Package graphio reads and writes weighted digraph descriptions for core.
//
// Every format carries the same document:
//
//	{nodes: N, edges: [{from, to, weight}, ...]}
//
// Supported formats:
//
//   - FormatEdgeList: plain text. The first non-blank, non-comment line is N;
//     each further line is "from to weight". '#' starts a comment.
//   - FormatJSON: encoding/json, unknown keys rejected.
//   - FormatYAML: gopkg.in/yaml.v3, unknown keys rejected.
//   - FormatTOML: BurntSushi/toml, edges as [[edges]] tables, unknown keys rejected.
//
// JSON, YAML and TOML documents are all checked against one embedded JSON
// Schema before the typed decode, so a missing nodes, from, to or weight is
// rejected in every format instead of decoding as zero.
//
// Structural problems (syntax, wrong types, missing or unknown keys, a node
// count above MaxNodes) surface as ErrMalformed. Semantic problems are left to core and propagate wrapped:
// core.ErrInvalidSize, core.ErrNodeOutOfRange, core.ErrInvalidWeight.
//
// Encoding emits arcs grouped by tail in ascending order, insertion order
// within a tail, so Decode(Encode(g)) rebuilds identical adjacency lists.
package graphio
