package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerise/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resume and recommendation HTTP API",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "listen address (default is server.addr or :8080)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func serve() {
	d, err := setup()
	if err != nil {
		log.Fatal(err)
	}
	defer d.logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := *d.config.Server
	cfg.ExamLimit = d.config.Recommend.ExamLimit

	d.logger.Info("starting the careerise server", zap.String("version", version), zap.String("store_path", d.store.Path()))

	srv := server.New(cfg, d.base, d.store, d.assembler, d.logger)
	if err := srv.Run(ctx); err != nil {
		d.logger.Fatal("serving", zap.Error(err))
	}
}
