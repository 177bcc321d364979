// Package pathfinder provides path-traversal safety checks shared by
// filesystem-facing commands. The original finder's glob-driven discovery
// engine, ignore-pattern matching, and git-repo-root detection are not
// carried here — flexbatch's own directory-pair discovery covers the one
// walk this module needs — so only the safety primitives remain.
package pathfinder
