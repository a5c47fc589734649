package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-engine/internal/storage"
)

var flagCheckpointsLimit int

var checkpointsCmd = &cobra.Command{
	Use:   "checkpoints",
	Short: "Manage saved states",
	Long: `Lists, shows and deletes states stored with --save.

Examples:
  pong checkpoints
  pong checkpoints show <id>
  pong checkpoints latest opening
  pong checkpoints delete <id>`,
	Args: cobra.NoArgs,
	RunE: runCheckpointsList,
}

var checkpointsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a checkpoint's state as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readState("", args[0])
		if err != nil {
			return err
		}
		return writeState(cmd.OutOrStdout(), s, "")
	},
}

var checkpointsLatestCmd = &cobra.Command{
	Use:   "latest <label>",
	Short: "Print the newest checkpoint with a label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		cp, err := store.LatestCheckpoint(args[0])
		if err != nil {
			return err
		}
		if cp == nil {
			return fmt.Errorf("no checkpoint labelled %q", args[0])
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s  step %d  %s\n", cp.ID, cp.Step, cp.Fingerprint)
		return writeState(cmd.OutOrStdout(), cp.State, "")
	},
}

var checkpointsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a checkpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteCheckpoint(args[0]); err != nil {
			return err
		}
		logger.Info("checkpoint deleted", "id", args[0])
		return nil
	},
}

func init() {
	checkpointsCmd.Flags().IntVar(&flagCheckpointsLimit, "limit", 20, "Number of checkpoints to list")
	checkpointsCmd.AddCommand(checkpointsShowCmd)
	checkpointsCmd.AddCommand(checkpointsLatestCmd)
	checkpointsCmd.AddCommand(checkpointsDeleteCmd)
}

func runCheckpointsList(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.ListCheckpoints(flagCheckpointsLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No checkpoints saved yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Use --save <label> with new, step, replay or run to store one.")
		return nil
	}

	fmt.Fprintf(out, "  %-36s  %-12s  %7s  %-16s  %s\n", "ID", "Label", "Step", "Fingerprint", "Date")
	fmt.Fprintf(out, "  %-36s  %-12s  %7s  %-16s  %s\n", "--", "-----", "----", "-----------", "----")
	for _, cp := range list {
		fmt.Fprintf(out, "  %-36s  %-12s  %7d  %-16s  %s\n",
			cp.ID, cp.Label, cp.Step, cp.Fingerprint, cp.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
