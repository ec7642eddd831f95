// packetctl assembles submittal packets from local manifest files, without
// the hosted function wrapper. Useful for previewing a packet against a
// staging content origin.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pacificaeng/submittalflow/internal/fetch"
	"github.com/pacificaeng/submittalflow/internal/models"
	"github.com/pacificaeng/submittalflow/internal/render"
	"github.com/pacificaeng/submittalflow/internal/services"
)

var (
	flagOrigin      string
	flagOutDir      string
	flagConcurrency int
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:           "packetctl",
		Short:         "Assemble submittal packets from manifest files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	assembleCmd := &cobra.Command{
		Use:   "assemble <manifest.json> [manifest.json...]",
		Short: "Assemble one packet per manifest",
		Long: `Reads each manifest (an assembly request: project data plus an ordered
document list) and writes the finished packet PDF to the output directory.
Manifests run concurrently up to --concurrency; each packet's documents are
still processed strictly in manifest order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAssemble,
	}
	assembleCmd.Flags().StringVar(&flagOrigin, "origin", "", "content origin that relative document addresses resolve against (required)")
	assembleCmd.Flags().StringVar(&flagOutDir, "out", ".", "directory to write packet PDFs into")
	assembleCmd.Flags().IntVar(&flagConcurrency, "concurrency", 4, "maximum manifests assembled in parallel")
	_ = assembleCmd.MarkFlagRequired("origin")
	rootCmd.AddCommand(assembleCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runAssemble(cmd *cobra.Command, args []string) error {
	assembler := services.NewAssembler(
		fetch.New(fetch.Config{ContentOrigin: flagOrigin}, nil, nil),
		render.New(services.BrandFromEnv()),
	)

	if flagConcurrency < 1 {
		flagConcurrency = 1
	}
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(flagConcurrency)

	for _, manifestPath := range args {
		eg.Go(func() error {
			if err := assembleManifest(ctx, assembler, manifestPath); err != nil {
				return fmt.Errorf("%s: %w", manifestPath, err)
			}
			return nil
		})
	}
	return eg.Wait()
}

func assembleManifest(ctx context.Context, assembler *services.Assembler, manifestPath string) error {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	var req models.AssemblePacketRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to decode manifest: %w", err)
	}

	result, err := assembler.Assemble(ctx, &req)
	if err != nil {
		return err
	}

	outPath := filepath.Join(flagOutDir, result.Filename+".pdf")
	if err := os.WriteFile(outPath, result.PDF, 0644); err != nil {
		return fmt.Errorf("failed to write packet: %w", err)
	}
	slog.Info("Packet written.", "path", outPath, "pageCount", result.PageCount)
	return nil
}
