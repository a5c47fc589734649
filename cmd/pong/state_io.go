package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/pong-engine/internal/games/pong"
	"github.com/vovakirdan/pong-engine/internal/storage"
)

// readState loads a state from a JSON file ("-" for stdin) or, when
// checkpointID is set, from the checkpoint store.
func readState(path, checkpointID string) (pong.State, error) {
	if checkpointID != "" {
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			return pong.State{}, err
		}
		defer store.Close()

		cp, err := store.Checkpoint(checkpointID)
		if err != nil {
			return pong.State{}, err
		}
		if cp == nil {
			return pong.State{}, fmt.Errorf("unknown checkpoint %q", checkpointID)
		}
		return cp.State, nil
	}

	if path == "" {
		return pong.State{}, fmt.Errorf("either --state or --from is required")
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return pong.State{}, fmt.Errorf("failed to read state %s: %w", path, err)
	}
	return pong.UnmarshalState(data)
}

// writeState prints the state as JSON and, when label is set, stores it as
// a checkpoint. A store that cannot be opened is logged and skipped.
func writeState(w io.Writer, s pong.State, label string) error {
	data, err := pong.MarshalState(s)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return err
	}

	if label == "" {
		return nil
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open checkpoint database", "error", err)
		return nil
	}
	defer store.Close()

	cp, err := store.SaveCheckpoint(label, s)
	if err != nil {
		return err
	}
	logger.Info("checkpoint saved", "id", cp.ID, "label", cp.Label, "step", cp.Step)
	return nil
}
