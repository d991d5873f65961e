package command

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vcrobe/lisplet/cmd/lispletc/internal/project"
	"github.com/vcrobe/lisplet/cmd/lispletc/internal/view"
	"github.com/vcrobe/lisplet/compiler"
)

// pageExtensions are the source extensions the compiler understands.
var pageExtensions = map[string]bool{
	".html": true,
	".htm":  true,
	".lisp": true,
}

// BuildOptions holds the options for the build command.
type BuildOptions struct {
	Config  string
	Src     string
	Out     string
	JS      string
	Base    string
	Workers int
}

func NewBuildCommand(cli *CLI) *cobra.Command {
	var opts BuildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile every page under the source directory",
		Long: Highlight("lispletc build [flags]") + "\n\n" +
			"Compile every page under the source directory into the output\n" +
			"directory. Each markup page (.html, .htm) or logic page (.lisp)\n" +
			"produces a rendered document next to its generated module.\n\n" +
			"Examples:\n" +
			"  # Build the project described by lisplet.yaml\n" +
			"  lispletc build\n\n" +
			"  # Build a specific tree with the module loader bootstrap\n" +
			"  lispletc build --src site --base goog/base.js\n",
		Args: ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunBuild(cmd.Context(), cli, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", project.DefaultFile, "Path to the project file")
	cmd.Flags().StringVarP(&opts.Src, "src", "s", "", "Source directory (overrides the project file)")
	cmd.Flags().StringVarP(&opts.Out, "out", "d", "", "Output directory (overrides the project file)")
	cmd.Flags().StringVar(&opts.JS, "js", "", "URI of the compiled runtime script (overrides the project file)")
	cmd.Flags().StringVar(&opts.Base, "base", "", "URI of the module loader base script (overrides the project file)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", runtime.NumCPU(), "Number of concurrent page compilations")

	return cmd
}

func RunBuild(ctx context.Context, cli *CLI, opts BuildOptions) error {
	cfg, err := project.Load(opts.Config)
	if err != nil {
		return err
	}
	cfg = cfg.Override(project.Config{Src: opts.Src, Out: opts.Out, JS: opts.JS, Base: opts.Base})

	if samePath(cfg.Src, cfg.Out) {
		return fmt.Errorf("output directory %q would overwrite the sources, use a separate out directory", cfg.Out)
	}

	pages, err := collectPages(cfg.Src, cfg.Out)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no pages found in %q", cfg.Src)
	}
	if err := checkStemCollisions(pages); err != nil {
		return err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var built atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, page := range pages {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if err := buildPage(cli, cfg, page); err != nil {
				return err
			}

			built.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	cli.Printf("Compiled %d page(s) to %s\n", built.Load(), cfg.Out)
	return nil
}

// buildPage compiles one source page and writes its bundle: the
// rendered document and the generated module side by side under the
// output directory, mirroring the source layout.
func buildPage(cli *CLI, cfg project.Config, page string) error {
	bundle, err := compiler.CompileFile(page, cfg.JS, cfg.Base)
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", page, err)
	}
	if bundle == nil {
		return nil
	}

	rel, err := filepath.Rel(cfg.Src, page)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", page, err)
	}

	stem := strings.TrimSuffix(rel, filepath.Ext(rel))
	markupPath := filepath.Join(cfg.Out, stem+".html")
	codePath := filepath.Join(cfg.Out, stem+".lisp")

	if err := writeFile(markupPath, bundle.Markup); err != nil {
		return err
	}
	if err := writeFile(codePath, bundle.Code); err != nil {
		return err
	}

	cli.Logger().Info("compiled page", view.PageAttr(rel), view.BundleAttr(markupPath, codePath))
	return nil
}

// collectPages walks root and gathers every source page, skipping
// hidden directories and the output directory so compiled bundles are
// never fed back in. Results come back sorted.
func collectPages(root, skip string) ([]string, error) {
	var pages []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if skip != "" && filepath.Clean(path) == filepath.Clean(skip) {
				return filepath.SkipDir
			}
			return nil
		}

		if pageExtensions[strings.ToLower(filepath.Ext(path))] {
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(pages)
	return pages, nil
}

// checkStemCollisions rejects page sets where two sources differ only
// by extension. Both would write the same output pair, and the worker
// pool makes the winner arbitrary.
func checkStemCollisions(pages []string) error {
	seen := make(map[string]string, len(pages))
	for _, page := range pages {
		stem := strings.TrimSuffix(page, filepath.Ext(page))
		if prior, ok := seen[stem]; ok {
			return fmt.Errorf("pages %q and %q would write the same outputs, rename one", prior, page)
		}
		seen[stem] = page
	}

	return nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
