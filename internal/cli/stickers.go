package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/render"
)

var stickerTurns string

var stickersCmd = &cobra.Command{
	Use:   "stickers <layer> <row> <col>",
	Short: "Show the stickers of one sub-cube",
	Long: `Print the colors visible on the sub-cube at (layer, row, col).

Layer runs from the down side (0) to the up side, row from the back (0) to
the front and col from the left (0) to the right. Corners show three
stickers, edges two, centers one and interior sub-cubes none.

Use --turns to scramble the cube first, e.g. --turns "front:1:90 up:1:-90".`,
	Args: cobra.ExactArgs(3),
	RunE: runStickers,
}

func init() {
	stickersCmd.Flags().StringVar(&stickerTurns, "turns", "", "Turns to apply before the lookup")
	rootCmd.AddCommand(stickersCmd)
}

func runStickers(cmd *cobra.Command, args []string) error {
	var coords [3]int
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("failed to parse coordinate %q: %w", arg, err)
		}
		coords[i] = v
	}

	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := nxncube.Position{Layer: coords[0], Row: coords[1], Col: coords[2]}
	if !p.InRange(cfg.Order) {
		return fmt.Errorf("%w: (%d, %d, %d) on an order %d cube", nxncube.ErrOutOfRange, p.Layer, p.Row, p.Col, cfg.Order)
	}

	turns, err := nxncube.ParseTurns(stickerTurns)
	if err != nil {
		return err
	}
	c, err := newCube(cfg, logger, turns)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cells := c.StickerCells(p)
	if len(cells) == 0 {
		fmt.Fprintln(out, "Interior sub-cube, no stickers")
		return nil
	}

	title := cases.Title(language.English)
	for _, side := range nxncube.Sides() {
		cell, ok := cells[side]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%-6s %-7s (cell %d)\n", title.String(side.Name()), title.String(cell.Color.Name()), cell.ID)
	}
	fmt.Fprintln(out, render.Legend(c.Stickers(p.Layer, p.Row, p.Col)))
	return nil
}
