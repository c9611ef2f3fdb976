// Package cli implements signctl, a terminal front end for the tablet
// signature workflow.
package cli

import (
	"detailing_crm/internal/config"
	"detailing_crm/internal/infrastructure/logging"
	"detailing_crm/internal/usecase/interfaces"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ServiceFactory builds the signature service client from the resolved
// configuration.
type ServiceFactory func(cfg config.SignatureConfig, logger *zap.Logger) (interfaces.ISignatureService, error)

type app struct {
	cfg        config.SignatureConfig
	logLevel   string
	newService ServiceFactory
}

// NewRootCommand builds signctl. Flags default to base, which cmd/signctl
// loads from the same environment variables the API reads.
func NewRootCommand(base config.Config, newService ServiceFactory) *cobra.Command {
	a := &app{cfg: base.Signature, logLevel: base.LogLevel, newService: newService}

	rootCmd := &cobra.Command{
		Use:   "signctl",
		Short: "Drive tablet signatures of visit protocols",
		Long: `signctl talks to the remote signature service: it sends a protocol to a
tablet, follows the session until it ends, cancels it, or downloads the signed
PDF.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfg.BaseURL, "url", a.cfg.BaseURL, "Signature service base URL")
	flags.StringVar(&a.cfg.Token, "token", a.cfg.Token, "Bearer token for the signature service")
	flags.DurationVar(&a.cfg.Timeout, "http-timeout", a.cfg.Timeout, "Timeout of each call to the signature service")
	flags.DurationVar(&a.cfg.PollInterval, "poll-interval", a.cfg.PollInterval, "Delay between status polls")
	flags.DurationVar(&a.cfg.CompletionDelay, "completion-delay", a.cfg.CompletionDelay, "Wait after COMPLETED before fetching the signed document")
	flags.StringVar(&a.logLevel, "log-level", a.logLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newRequestCmd(a),
		newStatusCmd(a),
		newCancelCmd(a),
		newDownloadCmd(a),
	)
	return rootCmd
}

func (a *app) logger() (*zap.Logger, error) {
	return logging.New(config.StageLocal, a.logLevel)
}

func (a *app) service(logger *zap.Logger) (interfaces.ISignatureService, error) {
	return a.newService(a.cfg, logger)
}
