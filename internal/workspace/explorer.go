package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/list"

	"github.com/fabkit-dev/fabkit/internal/ui"
)

const maxExplorerDepth = 4

var explorerSkip = map[string]bool{
	"node_modules": true,
	".git":         true,
	"build":        true,
	".gradle":      true,
}

// FocusExplorer prints the file tree of the project at path.
func (o *EditorOpener) FocusExplorer(ctx context.Context, path string) error {
	tree, err := RenderTree(ctx, path)
	if err != nil {
		return err
	}
	ui.Title(o.out, filepath.Base(path))
	ui.Print(o.out, tree)
	return nil
}

// RenderTree lists the files under root as an indented tree.
func RenderTree(ctx context.Context, root string) (string, error) {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)

	if err := appendDir(ctx, l, root, 1); err != nil {
		return "", err
	}
	return l.Render(), nil
}

func appendDir(ctx context.Context, l list.Writer, dir string, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			l.AppendItem(entry.Name())
			continue
		}

		l.AppendItem(entry.Name() + "/")
		if explorerSkip[entry.Name()] || depth >= maxExplorerDepth {
			continue
		}
		l.Indent()
		if err := appendDir(ctx, l, filepath.Join(dir, entry.Name()), depth+1); err != nil {
			return err
		}
		l.UnIndent()
	}
	return nil
}
