package terrain

// Vertex is one fine-grid mesh vertex ready for an external GPU uploader.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
	// Weights carries the paint mask channels for material blending.
	Weights [4]float32
}

// Mesh holds flattened terrain geometry. It is a snapshot: rebuilding after
// a mutation batch produces a fresh mesh, the renderer swaps it wholesale.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds is the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// BuildMesh flattens the heightfield into vertex and index arrays. weightsAt
// supplies per-vertex paint weights and may be nil, in which case channel 0
// is fully weighted. Normals come from the field's batch-computed array, so
// call RecomputeNormals before building.
func BuildMesh(hf *HeightField, weightsAt func(vertex int) [4]float32) *Mesh {
	g := hf.Grid()
	cols := g.VertexCols()
	rows := g.VertexRows()

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, cols*rows),
		Indices:  make([]uint32, 0, g.WidthSegments()*g.HeightSegments()*6),
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			pos := g.VertexLocal(col, row)
			n := hf.NormalAt(idx)

			weights := [4]float32{1, 0, 0, 0}
			if weightsAt != nil {
				weights = weightsAt(idx)
			}

			v := Vertex{
				Position: [3]float32{pos.X, hf.HeightAt(idx), pos.Y},
				Normal:   [3]float32{n.X, n.Y, n.Z},
				TexCoord: [2]float32{
					float32(col) / float32(g.WidthSegments()),
					float32(row) / float32(g.HeightSegments()),
				},
				Weights: weights,
			}
			updateBounds(&mesh.Bounds, v.Position)
			mesh.Vertices = append(mesh.Vertices, v)
		}
	}

	for row := 0; row < g.HeightSegments(); row++ {
		for col := 0; col < g.WidthSegments(); col++ {
			i00 := uint32(row*cols + col)
			i10 := i00 + 1
			i01 := i00 + uint32(cols)
			i11 := i01 + 1
			mesh.Indices = append(mesh.Indices,
				i00, i01, i10,
				i10, i01, i11,
			)
		}
	}

	return mesh
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
