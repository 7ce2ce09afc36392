package fonts

import (
	"sort"

	"github.com/go-fonts/liberation/liberationmonoregular"
	"github.com/go-fonts/liberation/liberationsansbold"
	"github.com/go-fonts/liberation/liberationsansitalic"
	"github.com/go-fonts/liberation/liberationsansregular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// File names of the default dossier fonts. The Liberation family covers
// Latin Extended Additional, so precomposed Vietnamese letters have glyphs.
const (
	RegularFile = "LiberationSans-Regular.ttf"
	ItalicFile  = "LiberationSans-Italic.ttf"
	BoldFile    = "LiberationSans-Bold.ttf"
	MonoFile    = "LiberationMono-Regular.ttf"
)

// File names of the bundled Go font family. It has no Vietnamese glyphs.
const (
	GoRegularFile = "Go-Regular.ttf"
	GoItalicFile  = "Go-Italic.ttf"
	GoBoldFile    = "Go-Bold.ttf"
	GoMonoFile    = "Go-Mono.ttf"
)

var embedded = map[string][]byte{
	RegularFile: liberationsansregular.TTF,
	ItalicFile:  liberationsansitalic.TTF,
	BoldFile:    liberationsansbold.TTF,
	MonoFile:    liberationmonoregular.TTF,

	GoRegularFile: goregular.TTF,
	GoItalicFile:  goitalic.TTF,
	GoBoldFile:    gobold.TTF,
	GoMonoFile:    gomono.TTF,
}

// EmbeddedLoader serves the fonts compiled into the binary.
func EmbeddedLoader(name string) ([]byte, error) {
	data, ok := embedded[name]
	if !ok {
		return nil, ErrFontNotFound
	}
	return data, nil
}

// EmbeddedFiles lists the names EmbeddedLoader knows, sorted.
func EmbeddedFiles() []string {
	names := make([]string, 0, len(embedded))
	for name := range embedded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
