package main

import "hw01/shared"

// Diamond rings at y=±0.7 joined to a square waist at y=0. Vertices 12 and
// 13 are the ring centers shared by every top and bottom face.
var vertexData = [...]float32{
	// top ring
	-1.0, 0.7, 0.0,
	0.0, 0.7, -1.0,
	1.0, 0.7, 0.0,
	0.0, 0.7, 1.0,
	// bottom ring
	-1.0, -0.7, 0.0,
	0.0, -0.7, -1.0,
	1.0, -0.7, 0.0,
	0.0, -0.7, 1.0,
	// waist
	-0.5, 0.0, 0.5,
	-0.5, 0.0, -0.5,
	0.5, 0.0, -0.5,
	0.5, 0.0, 0.5,
	// apexes
	0.0, 0.7, 0.0,
	0.0, -0.7, 0.0,
}

var colorData = [...]float32{
	0.0, 0.0, 1.0, 1.0,
	0.0, 0.0, 1.0, 1.0,
	0.0, 0.0, 1.0, 1.0,
	0.0, 0.0, 1.0, 1.0,

	0.0, 0.0, 1.0, 1.0,
	0.0, 0.0, 1.0, 1.0,
	0.0, 0.0, 1.0, 1.0,
	0.0, 0.0, 1.0, 1.0,

	0.0, 1.0, 1.0, 1.0,
	0.0, 1.0, 1.0, 1.0,
	0.0, 1.0, 1.0, 1.0,
	0.0, 1.0, 1.0, 1.0,
	0.0, 1.0, 1.0, 1.0,
	0.0, 1.0, 1.0, 1.0,
}

var indexData = [...]uint32{
	0, 12, 8,
	0, 12, 9,
	0, 8, 9,

	1, 12, 9,
	1, 12, 10,
	1, 9, 10,

	2, 12, 10,
	2, 12, 11,
	2, 10, 11,

	3, 12, 11,
	3, 12, 8,
	3, 11, 8,

	4, 13, 8,
	4, 13, 9,
	4, 8, 9,

	5, 13, 9,
	5, 13, 10,
	5, 9, 10,

	6, 13, 10,
	6, 13, 11,
	6, 10, 11,

	7, 13, 11,
	7, 13, 8,
	7, 11, 8,
}

var scene = shared.Scene{
	Name:       "shape",
	Positions:  vertexData[:],
	Colors:     colorData[:],
	Indices:    indexData[:],
	ClearColor: [4]float32{1.0, 1.0, 0.9, 0.0},
	DepthTest:  true,
}
