package favorite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"FractalVisualizer/fractal"
	"FractalVisualizer/misc"
	"FractalVisualizer/palette"
	"FractalVisualizer/save"
)

// Favorite is a persisted snapshot of a view plus everything needed to
// reproduce its render exactly. The JSON layout (snake_case keys, enum
// variants as strings, julia_param as a [re, im] array) matches the files
// earlier viewer versions wrote, so old favorites import unchanged.
type Favorite struct {
	View       fractal.ViewRect  `json:"view"`
	Palette    palette.Palette   `json:"palette"`
	Kind       fractal.Kind      `json:"fractal_type"`
	JuliaParam fractal.Parameter `json:"julia_param"`
}

func (f *Favorite) String() string {
	output := "{Favorite "
	output += fmt.Sprintf("View: %s ", f.View.String())
	output += fmt.Sprintf("Palette: %s ", f.Palette)
	output += fmt.Sprintf("Kind: %s ", f.Kind)
	output += fmt.Sprintf("JuliaParam: %v}", f.JuliaParam)
	return output
}

// Export writes the favorite as favorite_<timestamp>.json under dir, creating
// dir as needed, and returns the path of the written file.
func Export(dir string, fav Favorite) (string, error) {
	if dir == "" {
		dir = save.DefaultDir
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("unable to create folder %s - %s", dir, err)
	}

	contents, err := json.MarshalIndent(fav, "", "  ")
	if err != nil {
		return "", fmt.Errorf("unable to encode favorite - %s", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("favorite_%s.json", time.Now().Format("20060102_150405")))
	if _, err := misc.WriteFile(path, contents); err != nil {
		return "", err
	}
	return path, nil
}

// Import reads a favorite file written by Export (or by an earlier viewer
// version) and returns the settings it captured.
func Import(path string) (Favorite, error) {
	contents, err := misc.ReadFile(path)
	if err != nil {
		return Favorite{}, err
	}

	var fav Favorite
	if err := json.Unmarshal(contents, &fav); err != nil {
		return Favorite{}, fmt.Errorf("unable to decode favorite %s - %s", path, err)
	}
	return fav, nil
}

// List returns the favorite json files under dir, sorted by name. Since names
// embed a timestamp this is creation order. A missing directory lists empty.
func List(dir string) []string {
	if dir == "" {
		dir = save.DefaultDir
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files
}
