package cli

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	apperrors "github.com/kweiler/papergrid/pkg/errors"
	"github.com/kweiler/papergrid/pkg/render"
)

// newPreviewCmd creates the preview command serving a live sheet preview.
// Every request renders a fresh SVG from the default settings overlaid
// with query parameters, so the sheet can be tuned from the browser's
// address bar before committing to a PDF.
func newPreviewCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve a live SVG preview over HTTP",
		Long: `Serve a live SVG preview of the grid sheet over HTTP.

GET / renders the sheet as SVG. Query parameters override the defaults
using the same names as the render flags, e.g.:

  http://localhost:8423/?grid_size=12&margin=30,40,30,20&page_size=a4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8423", "listen address")

	return cmd
}

// runPreview serves the preview until the context is canceled.
func runPreview(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		data, l, err := renderPreview(req.URL.Query())
		if err != nil {
			logger.Debugf("Preview render failed: %v", err)
			http.Error(w, apperrors.UserMessage(err), http.StatusBadRequest)
			return
		}
		logger.Debugf("Preview: %dx%d cells, grid size %.3f", l.NumVSpaces, l.NumHSpaces, l.GridSize)
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(data)
	})

	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Preview listening on http://%s", addr)
	printInfo("Open http://%s in a browser; Ctrl-C stops the server", addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	printSuccess("Server stopped")
	return nil
}

// renderPreview renders one SVG sheet from defaults overlaid with query
// parameter overrides.
func renderPreview(q url.Values) ([]byte, renderLayout, error) {
	opts := defaultRenderOpts()
	if err := applyQuery(q, &opts); err != nil {
		return nil, renderLayout{}, err
	}
	p, err := buildParams(&opts)
	if err != nil {
		return nil, renderLayout{}, err
	}
	data, l, err := render.Render(render.FormatSVG, p)
	if err != nil {
		return nil, renderLayout{}, err
	}
	return data, renderLayout{NumVSpaces: l.NumVSpaces, NumHSpaces: l.NumHSpaces, GridSize: l.GridSize}, nil
}

// renderLayout carries the layout values the preview logs.
type renderLayout struct {
	NumVSpaces int
	NumHSpaces int
	GridSize   float64
}

// applyQuery overlays query parameters onto opts. Parameter names match the
// render flags; malformed values produce boundary validation errors.
func applyQuery(q url.Values, opts *renderOpts) error {
	if v := q.Get("page_size"); v != "" {
		opts.pageSize = v
	}
	if v := q.Get("margin"); v != "" {
		parts := strings.Split(v, ",")
		margin := make([]int, 0, len(parts))
		for _, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInvalidMargin, err, "invalid margin value %q", part)
			}
			margin = append(margin, n)
		}
		opts.margin = margin
	}

	var err error
	if opts.landscape, err = queryBool(q, "landscape", opts.landscape); err != nil {
		return err
	}
	if opts.gridSize, err = queryFloat(q, "grid_size", opts.gridSize); err != nil {
		return err
	}
	if opts.majorInterval, err = queryInt(q, "major_line_interval", opts.majorInterval); err != nil {
		return err
	}
	if v := q.Get("major_line_color"); v != "" {
		opts.majorColor = v
	}
	if opts.majorThickness, err = queryFloat(q, "major_line_thickness", opts.majorThickness); err != nil {
		return err
	}
	if v := q.Get("minor_line_color"); v != "" {
		opts.minorColor = v
	}
	if opts.minorThickness, err = queryFloat(q, "minor_line_thickness", opts.minorThickness); err != nil {
		return err
	}
	if v := q.Get("border_line_color"); v != "" {
		opts.borderColor = v
	}
	if opts.borderThickness, err = queryFloat(q, "border_line_thickness", opts.borderThickness); err != nil {
		return err
	}
	if v := q.Get("background_color"); v != "" {
		opts.backgroundColor = v
	}
	if opts.stretch, err = queryBool(q, "stretch_grid", opts.stretch); err != nil {
		return err
	}
	if opts.hCenter, err = queryBool(q, "horizontal_center", opts.hCenter); err != nil {
		return err
	}
	if opts.vCenter, err = queryBool(q, "vertical_center", opts.vCenter); err != nil {
		return err
	}
	return nil
}

func queryBool(q url.Values, key string, def bool) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid boolean %q for %s", v, key)
	}
	return b, nil
}

func queryFloat(q url.Values, key string, def float64) (float64, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid number %q for %s", v, key)
	}
	return f, nil
}

func queryInt(q url.Values, key string, def int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid integer %q for %s", v, key)
	}
	return n, nil
}
