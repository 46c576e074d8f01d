package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/notation"
	"github.com/SeamusWaldron/nxncube/internal/render"
)

var (
	showPlain bool
	showDump  bool
)

var showCmd = &cobra.Command{
	Use:   "show [turn...]",
	Short: "Apply turns to a solved cube and print it",
	Long: `Start from a solved cube, apply the given turns in order and print the
unfolded net. Output is colored on a terminal and plain letters otherwise.

Examples:
  nxncube show front:1:90
  nxncube show -n 4 "up:2:90 right:1:-90"
  nxncube show --dump right:1:180`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print letters instead of colors")
	showCmd.Flags().BoolVar(&showDump, "dump", false, "Print the row-by-row debug dump")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	turns, err := nxncube.ParseTurns(strings.Join(args, " "))
	if err != nil {
		return err
	}
	c, err := newCube(cfg, logger, turns)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showDump {
		fmt.Fprint(out, c.String())
		return nil
	}

	r := render.New(cfg.Hex, plainOutput(cfg, showPlain, out))
	fmt.Fprintln(out, r.Net(c, nil))
	fmt.Fprintln(out)
	if c.IsSolved() {
		fmt.Fprintf(out, "Order %d, %d turns, solved\n", c.Order(), len(turns))
	} else {
		fmt.Fprintf(out, "Order %d, %d turns\n", c.Order(), len(turns))
	}
	if len(turns) > 0 {
		fmt.Fprintf(out, "Moves: %s\n", notation.FormatSequence(notation.Simplify(turns)))
	}
	return nil
}
