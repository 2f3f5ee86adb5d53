// Package geometry builds mesh data for the scene graph: extruded text from
// font outlines, parametric torus knots, and edge outlines of existing meshes.
package geometry
