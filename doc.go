// Package nxncube models the logical state of an NxN Rubik's-style cube:
// which sticker sits in which slot, independent of any rendering.
//
// # Features
//
//   - Cubes of any order (1x1 upwards)
//   - Layer turns by any multiple of 90 degrees, outer or middle layers
//   - Per-sub-cube sticker queries for renderers
//   - Stable sticker ids for debugging and tests
//
// # Quick Start
//
//	cube, err := nxncube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Turn the front layer a quarter counter-clockwise (as seen from the front)
//	cube.RotateSide(nxncube.Front, 1, 90)
//
//	// Turn the middle slice parallel to Up
//	cube.RotateSide(nxncube.Up, 2, -90)
//
//	// Colors visible on the top-front-right corner
//	fmt.Println(cube.Stickers(2, 2, 2))
//
//	fmt.Print(cube)
//
// # Coordinates
//
// A sub-cube is addressed by (layer, row, col), each in [0, N): layer runs
// from Down to Up, row from Back to Front and col from Left to Right. Every
// face grid is read as seen from outside the cube; Up has Back along its top
// edge, Down has Front along its top edge and the four belt faces have Up
// along their top edge.
//
// # Turns
//
// A turn names a side, a layer counted from that side starting at 1, and a
// degree. Positive degrees turn counter-clockwise as seen looking at the side.
// Layer 1 also rotates the side's own face grid; layer N rotates the opposite
// face; layers in between only move stickers among the four neighbors.
package nxncube
