// Package report renders a designed circuit for display. The default "debug"
// renderer prints the "component values:" header followed by the topology
// name and its fields; "json" and "yaml" emit machine-readable documents and
// "text" renders an aligned summary from an embedded pongo2 template.
package report
