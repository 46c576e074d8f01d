// nxncube - CLI application for turning and inspecting NxN cubes.
package main

import (
	"github.com/SeamusWaldron/nxncube/internal/cli"
)

func main() {
	cli.Execute()
}
