package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-engine/internal/games/pong"
)

var flagConstantsJSON bool

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Show the engine constants",
	Long:  `Prints the fixed field and physics parameters the engine uses.`,
	Args:  cobra.NoArgs,
	RunE:  runConstants,
}

func init() {
	constantsCmd.Flags().BoolVar(&flagConstantsJSON, "json", false, "Print as JSON")
}

func runConstants(cmd *cobra.Command, _ []string) error {
	params := pong.Params()
	out := cmd.OutOrStdout()

	if flagConstantsJSON {
		data, err := json.MarshalIndent(params, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	rows := []struct {
		name  string
		value int
	}{
		{"ball_delta_per_step", params.BallDeltaPerStep},
		{"paddle_height", params.PaddleHeight},
		{"paddle_width", params.PaddleWidth},
		{"base_width", params.BaseWidth},
		{"base_height", params.BaseHeight},
		{"ball_radius", params.BallRadius},
		{"max_lives", params.MaxLives},
		{"tick_delay", params.TickDelay},
		{"base_ball_speed", params.BaseBallSpeed},
	}

	for _, r := range rows {
		fmt.Fprintf(out, "  %-20s %d\n", r.name, r.value)
	}
	return nil
}
