package pfpu

// State of the mesh iteration controller.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_IDLE    = State(0) // idle
	STATE_RUNNING = State(1) // running
	STATE_DONE    = State(2) // done
)

// Order is the sequence in which mesh points are visited.
type Order int

//go:generate go tool stringer -linecomment -type=Order
const (
	ORDER_ROW_MAJOR    = Order(0) // row-major
	ORDER_COLUMN_MAJOR = Order(1) // column-major
)

// ParseOrder returns the Order with the given name.
func ParseOrder(name string) (order Order, ok bool) {
	for _, order = range []Order{ORDER_ROW_MAJOR, ORDER_COLUMN_MAJOR} {
		if order.String() == name {
			return order, true
		}
	}
	return ORDER_ROW_MAJOR, false
}

// MESH_LAST_MASK is the width of the MESH_W and MESH_H registers.
const MESH_LAST_MASK = 0x7f

// Mesh walks the points of a Width x Height grid.
type Mesh struct {
	Width  int
	Height int
	Order  Order
	Index  int // Current point, in visiting order.
}

// NewMesh builds a mesh from the last-column and last-row register values.
func NewMesh(wLast, hLast uint32, order Order) Mesh {
	return Mesh{
		Width:  int(wLast&MESH_LAST_MASK) + 1,
		Height: int(hLast&MESH_LAST_MASK) + 1,
		Order:  order,
	}
}

// Total is the number of points in the mesh.
func (mesh *Mesh) Total() int {
	return mesh.Width * mesh.Height
}

// Point returns the coordinates of the current point. A finished mesh
// reports its last point.
func (mesh *Mesh) Point() (x, y int) {
	if mesh.Width == 0 || mesh.Height == 0 {
		return
	}

	index := min(mesh.Index, mesh.Total()-1)

	switch mesh.Order {
	case ORDER_COLUMN_MAJOR:
		x, y = index/mesh.Height, index%mesh.Height
	default:
		x, y = index%mesh.Width, index/mesh.Width
	}
	return
}

// Next advances to the next point, and reports whether the mesh is done.
func (mesh *Mesh) Next() (done bool) {
	if mesh.Index < mesh.Total() {
		mesh.Index++
	}
	return mesh.Done()
}

// Done reports whether every point has been visited.
func (mesh *Mesh) Done() bool {
	return mesh.Index >= mesh.Total()
}
