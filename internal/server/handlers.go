package server

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/ironsheep/recolor-image/internal/colormap"
	"github.com/ironsheep/recolor-image/internal/imaging"
	"github.com/ironsheep/recolor-image/internal/recolor"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "recolor_image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "recolor_image":
		return s.handleRecolorImage(args)
	case "list_colormaps":
		return s.handleListColormaps()
	case "edge_mask":
		return s.handleEdgeMask(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// tuningArgs are optional per-call overrides of the server's recolor options.
type tuningArgs struct {
	LowThreshold  *float64 `json:"low_threshold"`
	HighThreshold *float64 `json:"high_threshold"`
	DilateSize    *int     `json:"dilate_size"`
}

// recolorerFor returns the server's Recolorer, or a new one sharing its
// registry when the call overrides any tuning value.
func (s *Server) recolorerFor(t tuningArgs) (*recolor.Recolorer, error) {
	if t.LowThreshold == nil && t.HighThreshold == nil && t.DilateSize == nil {
		return s.recolorer, nil
	}

	opts := s.recolorer.Options()
	if t.LowThreshold != nil {
		opts.LowThreshold = *t.LowThreshold
	}
	if t.HighThreshold != nil {
		opts.HighThreshold = *t.HighThreshold
	}
	if t.DilateSize != nil {
		opts.DilationSize = *t.DilateSize
	}
	return recolor.New(s.recolorer.Registry(), opts)
}

// === Recolor Handlers ===

type recolorImageArgs struct {
	Path      string `json:"path"`
	Colormap  string `json:"colormap"`
	Test      bool   `json:"test"`
	OutputDir string `json:"output_dir"`
	tuningArgs
}

// RecolorResult lists the files written by recolor_image.
type RecolorResult struct {
	Outputs   []string `json:"outputs"`
	Colormaps []string `json:"colormaps"`
}

func (s *Server) handleRecolorImage(args json.RawMessage) (interface{}, error) {
	var a recolorImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputDir == "" {
		a.OutputDir = filepath.Dir(a.Path)
	}

	r, err := s.recolorerFor(a.tuningArgs)
	if err != nil {
		return nil, err
	}

	req := recolor.Request{
		ImagePath:    a.Path,
		ColormapName: a.Colormap,
		OutputDir:    a.OutputDir,
		Test:         a.Test,
	}
	written, err := r.Run(req)
	if err != nil {
		return nil, err
	}
	return &RecolorResult{Outputs: written, Colormaps: req.Colormaps()}, nil
}

// ColormapsResult lists the colormap names the server accepts.
type ColormapsResult struct {
	Colormaps     []string `json:"colormaps"`
	TestColormaps []string `json:"test_colormaps"`
}

func (s *Server) handleListColormaps() (interface{}, error) {
	return &ColormapsResult{
		Colormaps:     s.recolorer.Registry().Names(),
		TestColormaps: colormap.TestColormaps,
	}, nil
}

// === Edge Mask Handler ===

type edgeMaskArgs struct {
	Path string `json:"path"`
	tuningArgs
}

// EdgeMaskResult contains a dilated edge mask encoded as base64 PNG.
//
// White pixels (255) are the ones recolor_image restores to their original
// gray; black pixels (0) take the colormap color.
type EdgeMaskResult struct {
	// Width of the mask in pixels (same as input).
	Width int `json:"width"`

	// Height of the mask in pixels (same as input).
	Height int `json:"height"`

	// EdgePixels is the number of white pixels in the mask.
	EdgePixels int `json:"edge_pixels"`

	// ImageBase64 is the mask encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

func (s *Server) handleEdgeMask(args json.RawMessage) (interface{}, error) {
	var a edgeMaskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	r, err := s.recolorerFor(a.tuningArgs)
	if err != nil {
		return nil, err
	}

	gray, err := r.LoadGray(a.Path)
	if err != nil {
		return nil, err
	}
	mask, err := r.EdgeMask(gray)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNGBase64(mask)
	if err != nil {
		return nil, err
	}

	return &EdgeMaskResult{
		Width:       mask.Bounds().Dx(),
		Height:      mask.Bounds().Dy(),
		EdgePixels:  imaging.CountNonZero(mask),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
