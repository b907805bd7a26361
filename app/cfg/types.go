package cfg

// Scheme describes how a category directory is organized.
type Scheme string

const (
	// Flat categories hold their articles as files directly in the
	// category directory.
	Flat Scheme = "flat"
	// Tree categories hold one subdirectory per article, each containing
	// an index.gmi or index.gemini file.
	Tree Scheme = "tree"
)

// Category is one subdirectory of the site root to collect articles from.
type Category struct {
	Path   string // relative to the site root
	Scheme Scheme
}

type Cfg struct {
	// Site configuration
	RootDir    string
	BaseURL    string
	Categories []Category
	Output     string // absolute path the feed document is written to

	// Feed metadata
	Title    string
	Subtitle string
	Author   string
	Email    string

	// Entry selection and presentation
	N                int
	UseMtime         bool
	CleanUnderscores bool
	TitleCase        bool

	// Application metadata
	Quiet   bool
	Debug   bool
	Version string
}
