package main

import "hw01/shared"

var vertexData = [...]float32{
	-0.8, -0.8, 0.0,
	-0.2, 0.2, 0.0,
	0.8, 0.0, 0.0,

	0.0, 0.8, 0.0,
	0.8, 0.8, 0.0,
	0.4, -0.4, 0.0,
}

// translucent so the overlap blends
var colorData = [...]float32{
	1.0, 0.0, 0.0, 0.8,
	1.0, 0.0, 0.0, 0.8,
	1.0, 0.0, 0.0, 0.8,

	0.0, 1.0, 0.0, 0.8,
	0.0, 1.0, 0.0, 0.8,
	0.0, 1.0, 0.0, 0.8,
}

var scene = shared.Scene{
	Name:       "triangles",
	Positions:  vertexData[:],
	Colors:     colorData[:],
	ClearColor: [4]float32{0.9, 1.0, 1.0, 0.0},
	Blend:      true,
}
