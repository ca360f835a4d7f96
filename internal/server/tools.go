package server

import "github.com/ironsheep/recolor-image/internal/recolor"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// tuningProperties are the optional edge-detection overrides shared by tools.
func tuningProperties() map[string]interface{} {
	return map[string]interface{}{
		"low_threshold": map[string]interface{}{
			"type":        "number",
			"description": "Gradient magnitude at or below which a pixel is never an edge. Default 500",
			"default":     500,
		},
		"high_threshold": map[string]interface{}{
			"type":        "number",
			"description": "Gradient magnitude above which a pixel is always an edge. Default 1250",
			"default":     1250,
		},
		"dilate_size": map[string]interface{}{
			"type":        "integer",
			"description": "Side of the square kernel that grows the edge mask (odd, at most 255). Default 3",
			"default":     3,
			"minimum":     1,
			"maximum":     recolor.MaxDilationSize,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	recolorProps := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the input image file",
		},
		"colormap": map[string]interface{}{
			"type":        "string",
			"description": "Colormap name (e.g., viridis, magma, hot). Append _r to reverse. Required unless test is true",
		},
		"test": map[string]interface{}{
			"type":        "boolean",
			"description": "Render one output per test colormap (viridis, plasma, inferno, magma, cividis) instead of a single colormap",
			"default":     false,
		},
		"output_dir": map[string]interface{}{
			"type":        "string",
			"description": "Directory for output files. Defaults to the input image's directory",
		},
	}
	edgeProps := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the input image file",
		},
	}
	for k, v := range tuningProperties() {
		recolorProps[k] = v
		edgeProps[k] = v
	}

	return []Tool{
		{
			Name:        "recolor_image",
			Description: "Recolor a grayscale image through a named colormap, keeping edges in their original gray and pure black/white unchanged. Writes PNG files named <input>_recolored_<colormap>.png and returns their paths.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": recolorProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "list_colormaps",
			Description: "List the colormap names accepted by recolor_image.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "edge_mask",
			Description: "Compute the dilated edge mask recolor_image uses to preserve outlines. Returns a grayscale PNG (base64) where white marks preserved pixels.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": edgeProps,
				"required":   []string{"path"},
			},
		},
	}
}
