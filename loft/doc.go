// Package loft builds 3D triangle meshes from sampled 2D curves.
//
// Three constructions are provided: linear extrusion along +Z ([Linear]),
// revolution about the Y axis ([Revolution]) and sweeping a profile along a
// trajectory ([Generalized]). Each returns a fresh [Surface] with
// accumulated vertex normals. A [Lofter] keeps the current mode and
// parameters and regenerates on demand or, in real-time mode, once per
// [Lofter.Update] tick.
//
// Surfaces can be handed to a GPU through [VertexLayout], [Primitive] and
// [Surface.Interleave], or exported with [Surface.WriteOBJ].
package loft
