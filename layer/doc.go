// Package layer serializes declarative visualization layer descriptions
// into the JSON convention understood by the browser-side rendering engine,
// with an optional binary side channel for large numeric columns.
//
// A Layer is a type name, an id, and an ordered set of configuration
// fields. Field values are classified on assignment: quote-wrapped strings
// become literals, local image paths become inline data URLs, other strings
// and string lists become accessor expressions (strings the engine
// evaluates per row), and everything else passes through as plain JSON.
//
// With binary transport enabled, the layer's tabular dataset is split:
// numeric columns are flattened into typed buffers described by
// BufferDescriptor values (see the transport package for their wire
// framing), while non-numeric columns stay in the JSON document as row
// records. A field bound to a converted column is removed from the JSON
// side, so no attribute travels on both channels.
//
// Layers are single-owner values: encoding mutates the field mapping in
// place and nothing in this package synchronizes access.
package layer
