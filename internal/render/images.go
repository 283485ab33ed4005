package render

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DecodeVisualization decodes a visualization value, which the backend
// sends either as raw base64 or as a data:image/...;base64,... data URL.
func DecodeVisualization(value string) ([]byte, error) {
	if idx := strings.Index(value, ";base64,"); idx >= 0 && strings.HasPrefix(value, "data:") {
		value = value[idx+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image data: %w", err)
	}
	return data, nil
}

// SaveVisualizations decodes all visualization images into dir and returns
// the written paths, sorted by name. Image names from the server are
// flattened to their base name to keep writes inside dir.
func SaveVisualizations(dir string, visualizations map[string]string) ([]string, error) {
	if len(visualizations) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	names := make([]string, 0, len(visualizations))
	for name := range visualizations {
		names = append(names, name)
	}
	sort.Strings(names)

	var paths []string
	for _, name := range names {
		data, err := DecodeVisualization(visualizations[name])
		if err != nil {
			return paths, fmt.Errorf("visualization %q: %w", name, err)
		}
		base := filepath.Base(name)
		if filepath.Ext(base) == "" {
			base += ".png"
		}
		path := filepath.Join(dir, base)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// SavePredictions writes the optional predictions CSV passthrough.
func SavePredictions(dir, csv string) (string, error) {
	if csv == "" {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, "predictions.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		return "", fmt.Errorf("failed to write predictions: %w", err)
	}
	return path, nil
}
