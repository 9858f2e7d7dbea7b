package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the feedback API over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, config := setup("serve")

	narrator, err := newNarrator(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("serving without coach notes", zap.Error(err))
	}

	if err := server.New(logger, narrator).Run(ctx, config.Server.Addr); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}
