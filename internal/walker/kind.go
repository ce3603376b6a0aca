package walker

import (
	"path/filepath"
	"strings"
)

// Kind groups assets by how the site uses them.
type Kind string

const (
	KindImage Kind = "image"
	KindFont  Kind = "font"
	KindIcon  Kind = "icon"
	KindOther Kind = "other"
)

var extensionToKind = map[string]Kind{
	".png":   KindImage,
	".jpg":   KindImage,
	".jpeg":  KindImage,
	".gif":   KindImage,
	".webp":  KindImage,
	".avif":  KindImage,
	".svg":   KindImage,
	".ico":   KindIcon,
	".woff":  KindFont,
	".woff2": KindFont,
	".ttf":   KindFont,
	".otf":   KindFont,
}

// DetectKind returns the asset kind for a file name or path.
func DetectKind(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	if kind, ok := extensionToKind[ext]; ok {
		return kind
	}
	return KindOther
}
