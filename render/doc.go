// Package render turns rotated 3D point clouds into character grids.
//
// The pipeline is: sample a shape into points (geometry package), rotate
// them about the shape's origin, project each point onto the grid with a
// perspective divide, then shade surviving cells by depth against a
// character ramp. A Compositor ties the stages together and produces one
// FrameGrid per call; drivers own the clock and the rotation angles.
package render
