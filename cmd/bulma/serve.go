package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pthm/bulma"
	bulmaecho "github.com/pthm/bulma/adapters/echo"
	"github.com/pthm/bulma/hx"
	"github.com/pthm/bulma/internal/config"
	"github.com/pthm/bulma/internal/gallery"
	"github.com/pthm/bulma/internal/logger"
	"github.com/spf13/cobra"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr, key string

	cmd := &cobra.Command{
		Use:   "serve <gallery.yaml>",
		Short: "Serve a gallery over HTTP with lazily loaded cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.Load(args[0])
			if err != nil {
				return err
			}

			secret := []byte(key)
			if key == "" {
				secret = make([]byte, 32)
				if _, err := rand.Read(secret); err != nil {
					return fmt.Errorf("generate key: %w", err)
				}
				flags.log.Warn("no --key given, fragment URLs will not survive a restart")
			}

			e := newServer(doc, secret, flags.log)
			return run(cmd.Context(), e, addr, flags.log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")
	cmd.Flags().StringVar(&key, "key", "", "Key for signing fragment parameters")
	return cmd
}

// newServer wires the gallery pages and the fragment registry into echo.
func newServer(doc *config.Document, key []byte, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	zl := log.Zerolog()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zl.Debug().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	reg := bulmaecho.Mount(e, bulmaecho.WithKey(key))
	reg.Logger = zl

	var g *gallery.Gallery
	card := reg.Fragment("card", func(r *http.Request, p hx.Params) (templ.Component, error) {
		page, sample := p.String("page"), p.Int("sample")
		content, err := g.CardContent(page, sample)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", hx.ErrNotFound, err)
		}
		return bulma.Fragment(content, hx.FlashesOOB([]hx.Flash{
			{Level: hx.FlashInfo, Message: fmt.Sprintf("Loaded %s card %d", page, sample)},
		})), nil
	})

	g = gallery.New(doc, gallery.Options{
		Scripts: []string{htmxScript},
		PageURL: func(page string) string { return "/" + page },
		LazyURL: func(page string, sample int) string {
			return card.URL(hx.Params{"page": page, "sample": sample})
		},
	})

	e.GET("/", func(c echo.Context) error {
		return bulmaecho.Render(c, g.All())
	})
	e.GET("/:page", func(c echo.Context) error {
		page, err := g.Page(c.Param("page"))
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return bulmaecho.Render(c, page)
	})

	return e
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, e *echo.Echo, addr string, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]any{"addr": addr}).Info("serving gallery")
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}
