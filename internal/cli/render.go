package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cupstack/pkg/cache"
	"github.com/matzehuels/cupstack/pkg/canvas"
	"github.com/matzehuels/cupstack/pkg/command"
	"github.com/matzehuels/cupstack/pkg/config"
	"github.com/matzehuels/cupstack/pkg/errors"
	"github.com/matzehuels/cupstack/pkg/sink"
	"github.com/matzehuels/cupstack/pkg/tower"
)

// Output formats accepted by the render command.
const (
	formatSVG   = "svg"   // scene as SVG
	formatPNG   = "png"   // scene as PNG (librsvg)
	formatPDF   = "pdf"   // scene as PDF (librsvg)
	formatJSON  = "json"  // state snapshot
	formatText  = "txt"   // plain text state
	formatDOT   = "dot"   // stacking chain as Graphviz source
	formatGraph = "graph" // stacking chain rendered by Graphviz
	formatTerm  = "term"  // colored blocks on the terminal
)

var validFormats = []string{formatSVG, formatPNG, formatPDF, formatJSON, formatText, formatDOT, formatGraph, formatTerm}

// cachedFormats are the outputs worth caching: they shell out or run Graphviz.
var cachedFormats = []string{formatPNG, formatPDF, formatGraph}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple outputs)
	formats []string // output formats
	margin  int      // SVG margin in pixels
	crop    bool     // crop the SVG to the drawn shapes
	bg      string   // SVG background color
	scale   float64  // PNG scale factor
	noCache bool     // bypass the artifact cache
}

// renderCommand creates the render command which runs a script and exports
// the resulting tower.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{margin: 10, scale: 2}

	cmd := &cobra.Command{
		Use:   "render [script]",
		Short: "Run a script and export the final tower",
		Long: `Run a script and export the final tower.

The tower is made visible before exporting if the script left it hidden.
Formats: svg, png, pdf, json, txt, dot, graph, term. PNG and PDF need
rsvg-convert (librsvg) on the PATH.`,
		Example: `  cupstack render lesson.cups
  cupstack render lesson.cups -f svg,json -o out/lesson
  cupstack render lesson.cups -f term`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output formats, comma-separated (default svg)")
	cmd.Flags().IntVar(&opts.margin, "margin", opts.margin, "SVG margin in pixels")
	cmd.Flags().BoolVar(&opts.crop, "crop", false, "crop the SVG to the drawn shapes")
	cmd.Flags().StringVar(&opts.bg, "background", "", "SVG background color")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// parseFormats splits a comma-separated list, defaulting to svg.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !slices.Contains(validFormats, f) {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", f, strings.Join(validFormats, ", "))
		}
	}
	return nil
}

// basePath strips the extension from output, or derives a base from the
// script name when output is empty.
func basePath(output, input string) string {
	if output != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	if input == "-" {
		return "tower"
	}
	return strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
}

// extension maps a format to its file extension.
func extension(format string) string {
	switch format {
	case formatText:
		return ".txt"
	case formatGraph:
		return ".graph.svg"
	case formatTerm:
		return ".ansi"
	}
	return "." + format
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	data, name, err := readScript(input)
	if err != nil {
		return err
	}
	cmds, err := command.ParseScript(bytes.NewReader(data))
	if err != nil {
		return err
	}

	scene := canvas.NewScene()
	t := c.newTower(cfg, scene, nil)
	sum, err := command.Run(ctx, name, t, cmds, nil)
	if err != nil {
		return err
	}
	if sum.Failed > 0 {
		logger.Warn("Some commands failed", "failed", sum.Failed, "executed", sum.Executed)
	}
	if !t.Visible() {
		if err := t.MakeVisible(); err != nil {
			return err
		}
	}

	r := &renderer{
		cli:   c,
		opts:  opts,
		cfg:   cfg,
		t:     t,
		scene: scene,
		cache: c.newCache(cfg, opts.noCache),
		key:   data,
	}
	defer r.cache.Close()

	// A single format without -o goes to stdout.
	if len(opts.formats) == 1 && opts.output == "" {
		out, _, err := r.render(ctx, opts.formats[0])
		if err != nil {
			return err
		}
		w, err := openOutput("")
		if err != nil {
			return err
		}
		defer w.Close()
		_, err = w.Write(out)
		return err
	}

	base := basePath(opts.output, input)
	if len(opts.formats) == 1 && filepath.Ext(opts.output) != "" {
		base = opts.output
	}
	var written []string
	for _, f := range opts.formats {
		path := base
		if len(opts.formats) > 1 || filepath.Ext(opts.output) == "" {
			path = base + extension(f)
		}
		cached, err := r.writeFile(ctx, f, path)
		if err != nil {
			return err
		}
		printCached(path, cached)
		written = append(written, path)
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(written)))
	return nil
}

// renderer produces every output format from one finished tower.
type renderer struct {
	cli   *CLI
	opts  renderOpts
	cfg   config.Config
	t     *tower.Tower
	scene *canvas.Scene
	cache cache.Cache
	key   []byte
}

// cacheSettings is everything besides the script that changes an artifact.
type cacheSettings struct {
	Config     config.Config `json:"config"`
	Margin     int           `json:"margin"`
	Crop       bool          `json:"crop"`
	Background string        `json:"background"`
	Scale      float64       `json:"scale"`
}

func (r *renderer) writeFile(ctx context.Context, format, path string) (bool, error) {
	out, cached, err := r.render(ctx, format)
	if err != nil {
		return false, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	w, err := openOutput(path)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer w.Close()
	if _, err := w.Write(out); err != nil {
		return false, err
	}
	return cached, nil
}

// render returns the bytes of one format, consulting the cache for the
// expensive ones. The second result reports a cache hit.
func (r *renderer) render(ctx context.Context, format string) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)
	if !slices.Contains(cachedFormats, format) {
		out, err := r.build(ctx, format)
		return out, false, err
	}

	key := cache.ArtifactKey(r.key, cacheSettings{
		Config:     r.cfg,
		Margin:     r.opts.margin,
		Crop:       r.opts.crop,
		Background: r.opts.bg,
		Scale:      r.opts.scale,
	}, format)
	if out, ok, err := r.cache.Get(ctx, key); err != nil {
		logger.Warn("Cache read failed", "err", err)
	} else if ok {
		logger.Debug("Cache hit", "format", format)
		return out, true, nil
	}

	out, err := r.build(ctx, format)
	if err != nil {
		return nil, false, err
	}
	ttl, _ := r.cfg.CacheTTL()
	if err := r.cache.Set(ctx, key, out, ttl); err != nil {
		logger.Warn("Cache write failed", "err", err)
	}
	return out, false, nil
}

func (r *renderer) build(ctx context.Context, format string) ([]byte, error) {
	rects := r.scene.Rects()
	switch format {
	case formatSVG:
		return sink.RenderSVG(rects, r.svgOptions()...), nil
	case formatPNG, formatPDF:
		spinner := newSpinner(ctx, os.Stderr, "Converting to "+strings.ToUpper(format)+"...")
		spinner.Start()
		var (
			out []byte
			err error
		)
		if format == formatPNG {
			out, err = sink.RenderPNG(rects, sink.WithScale(r.opts.scale), sink.WithPNGSVGOptions(r.svgOptions()...))
		} else {
			out, err = sink.RenderPDF(rects, r.svgOptions()...)
		}
		if err != nil {
			spinner.StopWithError(strings.ToUpper(format) + " conversion failed")
			return nil, err
		}
		spinner.Stop()
		return out, nil
	case formatJSON:
		return sink.RenderJSON(sink.NewSnapshot(r.t, r.cli.Session))
	case formatText:
		return []byte(sink.RenderText(sink.NewSnapshot(r.t, ""))), nil
	case formatDOT:
		return []byte(sink.ToDOT(r.t.Cups())), nil
	case formatGraph:
		return sink.RenderDOT(ctx, sink.ToDOT(r.t.Cups()))
	case formatTerm:
		return []byte(sink.RenderTerminal(rects) + "\n"), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}

func (r *renderer) svgOptions() []sink.SVGOption {
	opts := []sink.SVGOption{sink.WithMargin(r.opts.margin)}
	if r.opts.crop {
		opts = append(opts, sink.WithCrop())
	}
	if r.opts.bg != "" {
		opts = append(opts, sink.WithBackground(r.opts.bg))
	}
	return opts
}

// =============================================================================
// Output Helpers
// =============================================================================

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns stdout for an empty path, otherwise creates the file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
