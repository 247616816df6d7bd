// Package linkrot provides a website and documentation link checker.
// It crawls a root target (a URL or a local directory served over HTTP),
// follows hyperlinks up to the boundary of the root's origin, and
// classifies every discovered link as reachable, broken, or skipped.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, yaml/).
package linkrot

// Version of the linkrot module.
const Version = "0.1.0"
