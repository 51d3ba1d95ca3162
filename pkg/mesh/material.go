package mesh

// Material is a static surface material record: a name plus a diffuse
// RGB color with components in [0, 1]. It is written verbatim to the
// material file and referenced by name from the geometry file.
type Material struct {
	Name    string
	Diffuse [3]float64
}
