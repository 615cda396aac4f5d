package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/rangetrainer/internal/fileutil"
	"github.com/lox/rangetrainer/ranges"
	"golang.org/x/sync/errgroup"
)

// ExportCmd writes the catalog as JSON, one file per table size.
type ExportCmd struct {
	Dir string `arg:"" optional:"" default:"." help:"Output directory"`
}

// exportFile is the JSON layout of one table size.
type exportFile struct {
	TableSize ranges.TableSize                                                 `json:"table_size"`
	Ranges    map[ranges.Scenario]map[ranges.Position]map[string]ranges.Action `json:"ranges"`
}

func buildExport(catalog *ranges.Catalog, size ranges.TableSize) exportFile {
	out := exportFile{
		TableSize: size,
		Ranges:    make(map[ranges.Scenario]map[ranges.Position]map[string]ranges.Action),
	}
	for _, e := range catalog.Entries() {
		if e.Size != size {
			continue
		}
		if out.Ranges[e.Scenario] == nil {
			out.Ranges[e.Scenario] = make(map[ranges.Position]map[string]ranges.Action)
		}
		out.Ranges[e.Scenario][e.Position] = e.Table.Map()
	}
	return out
}

func exportPath(dir string, size ranges.TableSize) string {
	return filepath.Join(dir, fmt.Sprintf("ranges-%s.json", size))
}

func (c *ExportCmd) Run(app *App) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", c.Dir, err)
	}

	g, ctx := errgroup.WithContext(app.Context)
	for _, size := range ranges.TableSizes() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := exportPath(c.Dir, size)
			data := buildExport(app.Catalog, size)
			if err := fileutil.WriteJSON(path, data, 0o644); err != nil {
				return err
			}
			app.Logger.Info("Exported charts", "table", size, "charts", countCharts(data), "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "exported %d charts to %s\n", app.Catalog.Len(), c.Dir)
	return nil
}

func countCharts(f exportFile) int {
	n := 0
	for _, byPosition := range f.Ranges {
		n += len(byPosition)
	}
	return n
}
