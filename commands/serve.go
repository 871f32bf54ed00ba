package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cfg, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer closeApp(a)

			if seed, _ := cmd.Flags().GetBool("seed"); seed {
				if err := a.Seeder.Seed(cmd.Context()); err != nil {
					return err
				}
			}
			if cfg.LogLevel != "info" {
				gin.SetMode(gin.ReleaseMode)
			}

			addr := ":" + cfg.Port
			srv := &http.Server{
				Addr:              addr,
				Handler:           a.Router(cfg.CORSOrigins),
				ReadTimeout:       10 * time.Second,
				ReadHeaderTimeout: 5 * time.Second,
				WriteTimeout:      20 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("🚀 Server starting on %s", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err, ok := <-errCh:
				if ok {
					return err
				}
				return nil
			case <-quit:
			}
			log.Println("⚠️  Shutdown signal received, shutting down server...")

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			log.Println("✅ Server stopped gracefully")
			return nil
		},
	}

	cmd.Flags().Bool("seed", false, "Seed the store before serving")
	return cmd
}
