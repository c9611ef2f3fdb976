package cli

import (
	"context"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/usecase"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	interruptedReason = "Cancelled from signctl"
	cancelTimeout     = 20 * time.Second
)

type requestOptions struct {
	protocolID     int64
	tabletID       string
	customerName   string
	instructions   string
	timeoutMinutes int
	wait           bool
	outputDir      string
}

func newRequestCmd(a *app) *cobra.Command {
	opts := &requestOptions{}
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Send a protocol to a tablet for signature",
		Long: `Send a protocol to a tablet. With --wait the session is polled until it
ends; an interrupt cancels it on the tablet. A completed session is saved to
--output as protokol-<id>-podpisany.pdf.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRequest(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&opts.protocolID, "protocol", 0, "Protocol id")
	f.StringVar(&opts.tabletID, "tablet", "", "Tablet id")
	f.StringVar(&opts.customerName, "customer", "", "Customer name shown on the tablet")
	f.StringVar(&opts.instructions, "instructions", "", "Instructions shown on the tablet")
	f.IntVar(&opts.timeoutMinutes, "timeout-minutes", 0, "Session timeout in minutes (service default when 0)")
	f.BoolVar(&opts.wait, "wait", false, "Poll until the session ends")
	f.StringVarP(&opts.outputDir, "output", "o", "", "Directory for the signed PDF (requires --wait)")
	_ = cmd.MarkFlagRequired("protocol")
	_ = cmd.MarkFlagRequired("tablet")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}

func (o *requestOptions) toRequest() entities.SignatureRequest {
	req := entities.SignatureRequest{
		ProtocolID:   o.protocolID,
		TabletID:     o.tabletID,
		CustomerName: o.customerName,
	}
	if o.instructions != "" {
		req.Instructions = &o.instructions
	}
	if o.timeoutMinutes != 0 {
		req.TimeoutMinutes = &o.timeoutMinutes
	}
	return req
}

func (a *app) runRequest(cmd *cobra.Command, opts *requestOptions) error {
	if opts.outputDir != "" && !opts.wait {
		return errors.New("--output requires --wait")
	}

	logger, err := a.logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	svc, err := a.service(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	coord := usecase.NewSignatureCoordinator(svc, usecase.SignatureCoordinatorConfig{
		PollInterval:    a.cfg.PollInterval,
		CompletionDelay: a.cfg.CompletionDelay,
		OnChange: func(s entities.SignatureSession) {
			fmt.Fprintf(out, "%s\t%s\n", s.SessionID, s.Status)
		},
	}, logger, nil)
	defer coord.Close()

	sessionID, err := coord.RequestSignature(ctx, opts.toRequest())
	if err != nil {
		return err
	}
	if !opts.wait {
		return nil
	}

	var saveErr error
	onComplete := func(string) {
		if opts.outputDir == "" {
			return
		}
		current := coord.Current()
		if current == nil {
			return
		}
		path, err := saveSignedDocument(ctx, coord, sessionID, current.ProtocolID, opts.outputDir)
		if err != nil {
			saveErr = err
			return
		}
		fmt.Fprintf(out, "saved %s\n", path)
	}
	if err := coord.StartPolling(onComplete); err != nil {
		return err
	}

	if err := coord.Wait(ctx); err != nil {
		logger.Info("interrupted, cancelling session", zap.String("session_id", sessionID))
		cancelCtx, cancel := context.WithTimeout(context.Background(), cancelTimeout)
		defer cancel()
		if cerr := coord.CancelSignature(cancelCtx, sessionID, interruptedReason); cerr != nil {
			return errors.Join(err, cerr)
		}
		return err
	}
	if saveErr != nil {
		return saveErr
	}

	current := coord.Current()
	if current == nil {
		return usecase.ErrNoActiveSignature
	}
	if current.Status != entities.SignatureStatusCompleted {
		return fmt.Errorf("signature session %s ended with status %s", sessionID, current.Status)
	}
	return nil
}
