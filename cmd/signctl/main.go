package main

import (
	"context"
	"detailing_crm/internal/cli"
	"detailing_crm/internal/config"
	"detailing_crm/internal/infrastructure/signature"
	"detailing_crm/internal/usecase/interfaces"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "signctl: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cfg, func(sigCfg config.SignatureConfig, logger *zap.Logger) (interfaces.ISignatureService, error) {
		return signature.NewClient(sigCfg, logger)
	})
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
