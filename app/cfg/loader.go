package cfg

import (
	"cmp"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	Author     string   `short:"a" long:"author" env:"GEMATOM_AUTHOR" description:"Author name" value-name:"NAME"`
	Base       string   `short:"b" long:"base" env:"GEMATOM_BASE" description:"Base URL for feed and entries" value-name:"URL"`
	Categories []string `short:"c" long:"category" description:"Category of a subdirectory, scheme is 'flat' or 'tree'" value-name:"DIR:SCHEME"`
	Directory  string   `short:"d" long:"directory" env:"GEMATOM_DIRECTORY" description:"Root directory of the site" value-name:"DIR"`
	Email      string   `short:"e" long:"email" env:"GEMATOM_EMAIL" description:"Author's email address" value-name:"EMAIL"`
	N          *int     `short:"n" long:"count" description:"Include the N most recently published articles in the feed (default 10)" value-name:"N"`
	Output     string   `short:"o" long:"output" description:"Output file name, relative names are placed under the site root (default atom.xml)" value-name:"FILE"`
	Title      string   `short:"t" long:"title" description:"Feed title (default: site root directory name)" value-name:"STR"`
	Subtitle   string   `short:"s" long:"subtitle" description:"Feed subtitle" value-name:"STR"`
	Mtime      bool     `long:"mtime" description:"Use file modification time instead of file creation time"`

	CleanUnderscores bool `long:"clean-underscores" env:"GEMATOM_CLEAN_UNDERSCORES" description:"Replace underscores with spaces in inferred titles"`
	TitleCase        bool `long:"title-case" env:"GEMATOM_TITLE_CASE" description:"Title-case inferred titles"`

	ConfigFile string `long:"config" env:"GEMATOM_CONFIG" description:"YAML site configuration file, explicit flags take precedence" value-name:"FILE"`
	Quiet      bool   `short:"q" long:"quiet" description:"Do not write on stdout under non-error conditions"`
	Debug      bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// fileCfg mirrors rawCfg for the optional YAML site file.
type fileCfg struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	Base      string `yaml:"base"`
	Directory string `yaml:"directory"`
	Output    string `yaml:"output"`
	Author    struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"author"`
	N                *int           `yaml:"n"`
	Mtime            bool           `yaml:"mtime"`
	CleanUnderscores bool           `yaml:"clean_underscores"`
	TitleCase        bool           `yaml:"title_case"`
	Categories       []fileCategory `yaml:"categories"`
}

type fileCategory struct {
	Path   string `yaml:"path"`
	Scheme string `yaml:"scheme"`
}

// Load builds the validated configuration from command-line arguments,
// environment variables and the optional YAML site file. It returns
// (nil, nil) when help was requested.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	var file fileCfg
	if raw.ConfigFile != "" {
		if err := loadFile(raw.ConfigFile, &file); err != nil {
			return nil, err
		}
	}

	root := cmp.Or(raw.Directory, file.Directory)
	if root == "" {
		return nil, fmt.Errorf("no site root directory configured (use -d)")
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving site root: %w", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("invalid directory: %s", root)
	}

	base, err := validateBaseURL(cmp.Or(raw.Base, file.Base))
	if err != nil {
		return nil, err
	}

	categories, err := mergeCategories(raw.Categories, file.Categories)
	if err != nil {
		return nil, err
	}

	output := cmp.Or(raw.Output, file.Output, "atom.xml")
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	n := 10
	if file.N != nil {
		n = *file.N
	}
	if raw.N != nil {
		n = *raw.N
	}

	return &Cfg{
		RootDir:          root,
		BaseURL:          base,
		Categories:       categories,
		Output:           output,
		Title:            cmp.Or(raw.Title, file.Title, filepath.Base(root)),
		Subtitle:         cmp.Or(raw.Subtitle, file.Subtitle),
		Author:           cmp.Or(raw.Author, file.Author.Name),
		Email:            cmp.Or(raw.Email, file.Author.Email),
		N:                n,
		UseMtime:         raw.Mtime || file.Mtime,
		CleanUnderscores: raw.CleanUnderscores || file.CleanUnderscores,
		TitleCase:        raw.TitleCase || file.TitleCase,
		Quiet:            raw.Quiet,
		Debug:            raw.Debug,
		Version:          GetVersion(),
	}, nil
}

func loadFile(path string, file *fileCfg) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	if err := yaml.Unmarshal(data, file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// validateBaseURL accepts only gemini URLs without user authentication,
// since that is the only place the generated feed can be served from.
func validateBaseURL(base string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("no base URL configured (use -b)")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme != "gemini" {
		return "", fmt.Errorf("bad URL scheme %q in base URL %s", u.Scheme, base)
	}
	if u.User != nil {
		return "", fmt.Errorf("user authentication not allowed in base URL %s", base)
	}
	return u.String(), nil
}

func mergeCategories(flagCats []string, fileCats []fileCategory) ([]Category, error) {
	var categories []Category
	if len(flagCats) > 0 {
		for _, val := range flagCats {
			cat, err := parseCategory(val)
			if err != nil {
				return nil, err
			}
			categories = append(categories, cat)
		}
	} else {
		for _, fc := range fileCats {
			scheme, err := parseScheme(fc.Scheme)
			if err != nil {
				return nil, err
			}
			if fc.Path == "" {
				return nil, fmt.Errorf("category without a path in configuration file")
			}
			categories = append(categories, Category{Path: fc.Path, Scheme: scheme})
		}
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories configured (use -c DIR:SCHEME)")
	}
	return categories, nil
}

func parseCategory(val string) (Category, error) {
	parts := strings.Split(val, ":")
	if len(parts) != 2 || parts[0] == "" {
		return Category{}, fmt.Errorf("bad category specification: %s", val)
	}
	scheme, err := parseScheme(parts[1])
	if err != nil {
		return Category{}, err
	}
	return Category{Path: parts[0], Scheme: scheme}, nil
}

func parseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case Flat, Tree:
		return Scheme(s), nil
	}
	return "", fmt.Errorf("not a valid category scheme: %s", s)
}
