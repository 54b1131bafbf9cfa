package fonts

import (
	"embed"
	"fmt"
)

//go:embed DejaVu/*.ttf
var fontFS embed.FS

// Load returns the byte data of an embedded font, addressed by the face
// name used in layout (e.g. "DejaVuSans", "DejaVuSans-Bold").
func Load(name string) ([]byte, error) {
	target := "DejaVu/" + name + ".ttf"
	data, err := fontFS.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read embedded font %s: %w", target, err)
	}
	return data, nil
}
