package cli

import (
	"context"
	"detailing_crm/internal/usecase"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status SESSION_ID",
		Short: "Print the status of a signature session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.logger()
			if err != nil {
				return err
			}
			svc, err := a.service(logger)
			if err != nil {
				return err
			}

			res, err := svc.GetSessionStatus(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%w: %w", usecase.ErrSignatureStatusFailed, err)
			}
			if !res.Success {
				return fmt.Errorf("%w: %s", usecase.ErrSignatureStatusFailed, res.Message)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\t%s\n", args[0], res.Status)
			if res.SignedAt != nil {
				fmt.Fprintf(out, "signed at\t%s\n", res.SignedAt.Format("2006-01-02 15:04:05"))
			}
			if res.SignedDocumentURL != "" {
				fmt.Fprintf(out, "document\t%s\n", res.SignedDocumentURL)
			}
			return nil
		},
	}
}

func newCancelCmd(a *app) *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "cancel SESSION_ID",
		Short: "Cancel a signature session on the tablet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.logger()
			if err != nil {
				return err
			}
			svc, err := a.service(logger)
			if err != nil {
				return err
			}

			res, err := svc.CancelSession(cmd.Context(), args[0], reason)
			if err != nil {
				return fmt.Errorf("%w: %w", usecase.ErrSignatureCancelFailed, err)
			}
			if !res.Success {
				return fmt.Errorf("%w: %s", usecase.ErrSignatureCancelFailed, res.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tCANCELLED\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason sent to the signature service")
	return cmd
}

func newDownloadCmd(a *app) *cobra.Command {
	var (
		protocolID int64
		outputDir  string
	)
	cmd := &cobra.Command{
		Use:   "download SESSION_ID",
		Short: "Download the signed protocol PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.logger()
			if err != nil {
				return err
			}
			svc, err := a.service(logger)
			if err != nil {
				return err
			}

			coord := usecase.NewSignatureCoordinator(svc, usecase.SignatureCoordinatorConfig{}, logger, nil)
			path, err := saveSignedDocument(cmd.Context(), coord, args[0], protocolID, outputDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
			return nil
		},
	}
	cmd.Flags().Int64Var(&protocolID, "protocol", 0, "Protocol id, used for the file name")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory for the signed PDF")
	_ = cmd.MarkFlagRequired("protocol")
	return cmd
}

func saveSignedDocument(ctx context.Context, coord *usecase.SignatureCoordinator, sessionID string, protocolID int64, dir string) (string, error) {
	if protocolID <= 0 {
		return "", errors.New("protocol id must be positive")
	}
	doc, err := coord.DownloadSignedDocument(ctx, sessionID, protocolID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return "", fmt.Errorf("write signed document: %w", err)
	}
	return path, nil
}
