package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/CristiGvl/zenstat/internal/config"
	"github.com/CristiGvl/zenstat/stats"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	root := &cobra.Command{
		Use:   "zenstat",
		Short: "Print per-core frequency and voltage of AMD Zen CPUs",
		Long: `zenstat reads the P-state status MSR (0xC0010293) of every physical core,
decodes the FID, DID and VID fields into core frequency and voltage, and
prints them followed by the CPU and DIMM temperatures.

It needs read access to /dev/cpuctlN (FreeBSD) or /dev/cpu/N/msr (Linux).
On FreeBSD the process enters Capsicum capability mode before any register
is read.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := stats.NewRunner(config.Default(), logger)
			if err != nil {
				return err
			}
			return runner.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
