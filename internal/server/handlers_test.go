package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestHandleToolsCall_RecolorImage(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 40, 30)
	outDir := t.TempDir()

	resp := callTool(t, s, "recolor_image", map[string]interface{}{
		"path":       imgPath,
		"colormap":   "viridis",
		"output_dir": outDir,
	})

	var result RecolorResult
	if err := json.Unmarshal([]byte(toolText(t, resp)), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}

	want := filepath.Join(outDir, "input_recolored_viridis.png")
	if len(result.Outputs) != 1 || result.Outputs[0] != want {
		t.Fatalf("outputs: got %v, want [%s]", result.Outputs, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestHandleToolsCall_RecolorImage_DefaultOutputDir(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 20, 20)

	resp := callTool(t, s, "recolor_image", map[string]interface{}{
		"path":     imgPath,
		"colormap": "hot",
	})
	toolText(t, resp)

	want := filepath.Join(filepath.Dir(imgPath), "input_recolored_hot.png")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output not written next to input: %v", err)
	}
}

func TestHandleToolsCall_RecolorImage_TestMode(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 20, 20)

	resp := callTool(t, s, "recolor_image", map[string]interface{}{
		"path":       imgPath,
		"test":       true,
		"output_dir": t.TempDir(),
	})

	var result RecolorResult
	if err := json.Unmarshal([]byte(toolText(t, resp)), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if len(result.Outputs) != 5 || len(result.Colormaps) != 5 {
		t.Errorf("test mode: got %d outputs for %v", len(result.Outputs), result.Colormaps)
	}
}

func TestHandleToolsCall_RecolorImage_Errors(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 20, 20)

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"invalid colormap", map[string]interface{}{"path": imgPath, "colormap": "nope", "output_dir": t.TempDir()}},
		{"missing colormap", map[string]interface{}{"path": imgPath}},
		{"colormap with test", map[string]interface{}{"path": imgPath, "colormap": "viridis", "test": true}},
		{"missing file", map[string]interface{}{"path": "/nonexistent/image.png", "colormap": "viridis", "output_dir": t.TempDir()}},
		{"even dilate size", map[string]interface{}{"path": imgPath, "colormap": "viridis", "dilate_size": 4}},
		{"oversized dilate size", map[string]interface{}{"path": imgPath, "colormap": "viridis", "dilate_size": 1001}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, "recolor_image", tt.args)
			if resp.Error == nil {
				t.Fatal("expected error response")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("error code: got %d, want -32000", resp.Error.Code)
			}
		})
	}
}

func TestHandleToolsCall_ListColormaps(t *testing.T) {
	s := newTestServer(t)
	resp := callTool(t, s, "list_colormaps", map[string]interface{}{})

	var result ColormapsResult
	if err := json.Unmarshal([]byte(toolText(t, resp)), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if len(result.Colormaps) != s.recolorer.Registry().Len() {
		t.Errorf("colormaps: got %d, want %d", len(result.Colormaps), s.recolorer.Registry().Len())
	}
	if len(result.TestColormaps) != 5 {
		t.Errorf("test colormaps: got %v", result.TestColormaps)
	}
}

func TestHandleToolsCall_EdgeMask(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 40, 40)

	resp := callTool(t, s, "edge_mask", map[string]interface{}{"path": imgPath})

	var result EdgeMaskResult
	if err := json.Unmarshal([]byte(toolText(t, resp)), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if result.Width != 40 || result.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 40x40", result.Width, result.Height)
	}
	if result.EdgePixels == 0 {
		t.Error("diagonal edge produced an empty mask")
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(decoded)); err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
}

func TestHandleToolsCall_EdgeMask_WithTuning(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 40, 40)

	count := func(args map[string]interface{}) int {
		var result EdgeMaskResult
		if err := json.Unmarshal([]byte(toolText(t, callTool(t, s, "edge_mask", args))), &result); err != nil {
			t.Fatalf("failed to decode result: %v", err)
		}
		return result.EdgePixels
	}

	base := count(map[string]interface{}{"path": imgPath})
	thin := count(map[string]interface{}{"path": imgPath, "dilate_size": 1})
	none := count(map[string]interface{}{"path": imgPath, "low_threshold": 5000, "high_threshold": 6000})

	if thin >= base {
		t.Errorf("dilate_size 1 gave %d pixels, default gave %d", thin, base)
	}
	if none != 0 {
		t.Errorf("unreachable thresholds gave %d pixels, want 0", none)
	}
	if s.recolorer.Options().DilationSize != 3 {
		t.Error("per-call tuning changed the server defaults")
	}
}

func TestHandleToolsCall_InvalidTool(t *testing.T) {
	s := newTestServer(t)
	resp := callTool(t, s, "nonexistent_tool", map[string]interface{}{})

	if resp.Error == nil {
		t.Fatal("expected error for unknown tool")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`{invalid json}`),
	})

	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("error: got %+v, want code -32602", resp.Error)
	}
}
