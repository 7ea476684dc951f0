// Package traversal defines the narrow contract between the verification
// suite and a graph traversal service under test.
//
// The contract is handle-based, mirroring native graph libraries: a Service
// hands out GraphDescr handles; a descriptor receives a topology, allocates
// per-vertex and per-edge data slots, runs a BFS writing distances and
// predecessors into those slots, and surfaces results through GetVertexData.
// Every operation yields a Status rather than an error so that the corner
// case validator can distinguish specific rejection codes (in particular
// StatusInvalidValue for null-argument misuse) from generic failure.
//
// The suite never inspects service internals beyond these calls. The call
// blocks until results are ready; once it returns, all slot contents are
// visible to the caller. No cancellation or timeout is specified for an
// individual call: a call either completes or the process blocks, an
// accepted limitation of the methodology.
//
// RunBFS takes the source vertex by pointer so that a nil source, a real
// misuse mode of handle-based APIs, is expressible and testable.
package traversal
