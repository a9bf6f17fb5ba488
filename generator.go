package ligstyle

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"

	core "github.com/coelacanthushex/ligstyle/internal/ligstyle"
)

// ErrStale is returned in check mode when the file on disk differs from
// what would be generated.
var ErrStale = errors.New("userstyle is out of date")

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	logger := loggerOrDefault(config.Logger)

	// 1. Resolve catalogue and metadata
	cat, err := LoadCatalogue(config.CataloguePath)
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}
	meta := config.Metadata
	if meta == (Metadata{}) {
		meta = core.DefaultMetadata()
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	// 2. Expand rules
	rules := core.Rules(cat)
	content := core.RenderString(cat, meta)
	result := &GenerateResult{
		OutputPath:     config.OutputPath,
		RulesGenerated: len(rules),
		Tags:           len(cat.Sets),
		Aliases:        len(cat.Aliases()),
	}
	logger.Debug("expanded catalogue",
		"tags", result.Tags, "aliases", result.Aliases, "rules", result.RulesGenerated)

	// 3. Emit
	switch {
	case config.Writer != nil:
		n, err := config.Writer.Write([]byte(content))
		result.BytesWritten = int64(n)
		if err != nil {
			return nil, fmt.Errorf("write userstyle: %w", err)
		}

	case config.Check:
		existing, err := os.ReadFile(config.OutputPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", config.OutputPath, err)
		}
		if string(existing) == content {
			result.UpToDate = true
			return result, nil
		}
		result.Diff = udiff.Unified(config.OutputPath, "generated", string(existing), content)
		return result, fmt.Errorf("%s: %w", config.OutputPath, ErrStale)

	default:
		n, err := writeFile(config.OutputPath, content)
		result.BytesWritten = n
		if err != nil {
			return nil, err
		}
		logger.Info("wrote userstyle", "path", config.OutputPath, "bytes", n)
	}

	return result, nil
}

// LoadCatalogue returns the catalogue at path, or the built-in one when
// path is empty.
func LoadCatalogue(path string) (Catalogue, error) {
	if path == "" {
		cat := core.DefaultCatalogue()
		return cat, cat.Validate()
	}
	return core.LoadCatalogueFile(path)
}

// WriteUserscript writes the auxiliary userscript to path.
func WriteUserscript(path string, meta UserscriptMeta) (int64, error) {
	f, err := create(path)
	if err != nil {
		return 0, err
	}
	w := bufio.NewWriter(f)
	n, err := core.RenderUserscript(w, meta)
	return n, finish(f, w, path, err)
}

// writeFile creates path and writes content through a buffer. The file is
// closed on every path.
func writeFile(path, content string) (int64, error) {
	f, err := create(path)
	if err != nil {
		return 0, err
	}
	w := bufio.NewWriter(f)
	n, err := w.WriteString(content)
	return int64(n), finish(f, w, path, err)
}

func create(path string) (*os.File, error) {
	if path == "" {
		return nil, errors.New("output path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	// #nosec G304 - path comes from trusted configuration
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

func finish(f *os.File, w *bufio.Writer, path string, writeErr error) error {
	if writeErr == nil {
		writeErr = w.Flush()
	}
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("write %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}
	return nil
}
