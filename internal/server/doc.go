// Package server exposes recoloring over the Model Context Protocol (MCP).
//
// The server speaks JSON-RPC 2.0, one message per line, over stdin/stdout.
// Logging goes to stderr so it never interleaves with protocol traffic.
//
// # Tools
//
//   - recolor_image: recolor an image file and write PNG outputs
//   - list_colormaps: list the registered colormap names
//   - edge_mask: return the dilated edge mask used for edge preservation
//
// # Errors
//
//   - -32700: the request line is not valid JSON
//   - -32601: unknown method
//   - -32602: tools/call params do not decode
//   - -32000: the tool ran and failed; the error data holds its message
package server
