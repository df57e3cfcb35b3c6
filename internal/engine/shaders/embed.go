// Package shaders embeds the GLSL sources used by the renderer.
package shaders

import _ "embed"

//go:embed planet.vert
var PlanetVertex string

//go:embed planet.frag
var PlanetFragment string

//go:embed sun.vert
var SunVertex string

//go:embed sun.frag
var SunFragment string

//go:embed skybox.vert
var SkyboxVertex string

//go:embed skybox.frag
var SkyboxFragment string

//go:embed orbit.vert
var OrbitVertex string

//go:embed orbit.frag
var OrbitFragment string
