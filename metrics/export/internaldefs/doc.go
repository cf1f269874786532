// Package internaldefs holds the shared metric definitions used by the
// exporter packages. It exists so exporters agree on names and help strings
// without duplicating tables.
package internaldefs
