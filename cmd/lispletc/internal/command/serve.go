package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	ghtml "maragu.dev/gomponents/html"

	"github.com/vcrobe/lisplet/cmd/lispletc/internal/project"
	"github.com/vcrobe/lisplet/cmd/lispletc/internal/view"
	"github.com/vcrobe/lisplet/compiler"
)

// ServeOptions holds the options for the serve command.
type ServeOptions struct {
	Config string
	Addr   string
	Src    string
	JS     string
	Base   string
}

func NewServeCommand(cli *CLI) *cobra.Command {
	var opts ServeOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the source directory, compiling pages on demand",
		Long: Highlight("lispletc serve [flags]") + "\n\n" +
			"Start a development server over the source directory. Every\n" +
			"request compiles the page fresh, so edits show up on reload:\n" +
			"/pages/<path> serves the rendered document and /modules/<path>\n" +
			"the generated module. The index lists every page found.\n",
		Args: ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunServe(cmd.Context(), cli, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", project.DefaultFile, "Path to the project file")
	cmd.Flags().StringVarP(&opts.Addr, "addr", "a", ":8080", "Address to listen on")
	cmd.Flags().StringVarP(&opts.Src, "src", "s", "", "Source directory (overrides the project file)")
	cmd.Flags().StringVar(&opts.JS, "js", "", "URI of the compiled runtime script (overrides the project file)")
	cmd.Flags().StringVar(&opts.Base, "base", "", "URI of the module loader base script (overrides the project file)")

	return cmd
}

func RunServe(ctx context.Context, cli *CLI, opts ServeOptions) error {
	cfg, err := project.Load(opts.Config)
	if err != nil {
		return err
	}
	cfg = cfg.Override(project.Config{Src: opts.Src, JS: opts.JS, Base: opts.Base})

	server := &http.Server{
		Addr:    opts.Addr,
		Handler: newServeMux(cli, cfg),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	cli.Printf("Serving %s on %s\n", cfg.Src, opts.Addr)
	cli.Logger().Info("development server listening", "addr", opts.Addr, "src", cfg.Src)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

func newServeMux(cli *CLI, cfg project.Config) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		serveIndex(cli, cfg, w)
	})
	mux.HandleFunc("GET /pages/", func(w http.ResponseWriter, r *http.Request) {
		servePage(cli, cfg, w, r, "/pages/", false)
	})
	mux.HandleFunc("GET /modules/", func(w http.ResponseWriter, r *http.Request) {
		servePage(cli, cfg, w, r, "/modules/", true)
	})

	return mux
}

// servePage compiles the requested source page on the fly and serves
// one half of its bundle.
func servePage(cli *CLI, cfg project.Config, w http.ResponseWriter, r *http.Request, prefix string, module bool) {
	rel := path.Clean("/" + r.URL.Path[len(prefix):])
	src := filepath.Join(cfg.Src, filepath.FromSlash(rel))

	bundle, err := compiler.CompileFile(src, cfg.JS, cfg.Base)
	if errors.Is(err, fs.ErrNotExist) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		cli.Logger().Error("failed to compile page", view.PageAttr(rel), view.ErrAttr(err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if bundle == nil {
		http.NotFound(w, r)
		return
	}

	if module {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, bundle.Code)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, bundle.Markup)
}

// serveIndex renders the page listing.
func serveIndex(cli *CLI, cfg project.Config, w http.ResponseWriter) {
	pages, err := collectPages(cfg.Src, cfg.Out)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rels := make([]string, 0, len(pages))
	for _, page := range pages {
		rel, err := filepath.Rel(cfg.Src, page)
		if err != nil {
			continue
		}
		rels = append(rels, filepath.ToSlash(rel))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexPage(cfg.Src, rels).Render(w); err != nil {
		cli.Logger().Error("failed to render index", view.ErrAttr(err))
	}
}

func indexPage(src string, pages []string) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    "lisplet dev server",
		Language: "en",
		Body: []g.Node{
			ghtml.H1(g.Text("lisplet pages")),
			ghtml.P(
				g.Text("Source directory: "),
				ghtml.Code(g.Text(src)),
			),
			ghtml.Ul(
				g.Map(pages, func(page string) g.Node {
					return ghtml.Li(
						ghtml.A(ghtml.Href("/pages/"+page), g.Text(page)),
						g.Text(" ("),
						ghtml.A(ghtml.Href("/modules/"+page), g.Text("module")),
						g.Text(")"),
					)
				}),
			),
		},
	})
}
