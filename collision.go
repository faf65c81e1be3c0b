package ldtk

import "github.com/jakecoffman/cp"

// Chipmunk collision geometry synthesized from int-grid layers. Cells
// marked non-zero become static boxes; horizontal runs of cells merge into
// single boxes to keep the shape count down.

// IntGridBoxes returns one bounding box per horizontal run of non-zero
// cells in the mask, in world coordinates (Y up), with each cell scaled to
// cellSize pixels.
func IntGridBoxes(mask *CellMask, cellSize float64) []cp.BB {
	var boxes []cp.BB
	for y := 0; y < mask.Height(); y++ {
		run := 0
		for x := 0; x <= mask.Width(); x++ {
			if x < mask.Width() && mask.At(GridCoord{X: x, Y: y}) {
				run++
				continue
			}
			if run > 0 {
				boxes = append(boxes, cp.BB{
					L: float64(x-run) * cellSize,
					B: float64(y) * cellSize,
					R: float64(x) * cellSize,
					T: float64(y+1) * cellSize,
				})
				run = 0
			}
		}
	}
	return boxes
}

// AddIntGridShapes builds IntGridBoxes for the mask and adds each as a
// static box shape on the space's static body. The created shapes are
// returned so the caller can set collision types or remove them on level
// change.
func AddIntGridShapes(space *cp.Space, mask *CellMask, cellSize float64) []*cp.Shape {
	boxes := IntGridBoxes(mask, cellSize)
	shapes := make([]*cp.Shape, 0, len(boxes))
	for _, bb := range boxes {
		shape := cp.NewBox2(space.StaticBody, bb, 0)
		shapes = append(shapes, space.AddShape(shape))
	}
	return shapes
}
