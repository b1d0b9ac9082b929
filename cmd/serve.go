package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/server"
)

var (
	servePort     int
	serveWatch    bool
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio with per-request rendering",
	Long: `Starts an HTTP server that renders every page from the content document
on each request. With --watch the browser reloads when the content
document, the layout or the assets change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if cmd.Flags().Changed("watch") {
			cfg.Server.Watch = serveWatch
		}
		if cmd.Flags().Changed("allow-all-origins") {
			cfg.Server.AllowAllOrigins = serveAllowAll
		}

		a, err := newAssembler(cfg, log)
		if err != nil {
			return err
		}
		srv := server.New(server.Config{
			Port:      cfg.Server.Port,
			BasePath:  cfg.BasePath,
			AssetsDir: cfg.AssetsDir,
			AllowAll:  cfg.Server.AllowAllOrigins,
			Live:      cfg.Server.Watch,
		}, a, log.Named("server"))

		// Interrupts cancel the command context and shut the server down.
		ctx := cmd.Context()

		if hub := srv.Hub(); hub != nil {
			paths := []string{cfg.AssetsDir}
			if !isRemote(cfg.Content) {
				paths = append(paths, cfg.Content)
			}
			if cfg.Layout != "" {
				paths = append(paths, cfg.Layout)
			}
			w := &server.Watcher{
				OnChange: func() {
					log.Info("change detected, reloading clients", zap.Int("clients", hub.Len()))
					hub.Broadcast()
				},
				Log: log.Named("watch"),
			}
			go func() {
				if err := w.Run(ctx, paths...); err != nil {
					log.Warn("file watcher stopped", zap.Error(err))
				}
			}()
		}

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "folio %s serving %s\n", Version, cfg.Content)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	},
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the browser when files change")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}
