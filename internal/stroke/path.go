package stroke

// Op is a path command.
type Op uint8

const (
	MoveTo Op = iota
	QuadTo
	Close
)

// Cmd is one path command. MoveTo uses Args[0:2]; QuadTo uses the control
// point in Args[0:2] and the end point in Args[2:4].
type Cmd struct {
	Op   Op
	Args [4]float64
}

// Path is a fillable path description.
type Path struct {
	Cmds []Cmd
}

// Empty reports whether the path has nothing to fill.
func (p Path) Empty() bool { return len(p.Cmds) == 0 }

// ToPath smooths an outline polygon into a closed path of quadratic curves
// that pass through the midpoints between consecutive outline points.
func ToPath(outline []Vec) Path {
	if len(outline) == 0 {
		return Path{}
	}

	cmds := make([]Cmd, 0, len(outline)+2)
	cmds = append(cmds, Cmd{Op: MoveTo, Args: [4]float64{outline[0].X, outline[0].Y}})
	for i, p := range outline {
		n := outline[(i+1)%len(outline)]
		cmds = append(cmds, Cmd{
			Op:   QuadTo,
			Args: [4]float64{p.X, p.Y, (p.X + n.X) / 2, (p.Y + n.Y) / 2},
		})
	}
	cmds = append(cmds, Cmd{Op: Close})
	return Path{Cmds: cmds}
}

// StrokeToPath converts a pressure-weighted polyline into a fillable path.
func StrokeToPath(points []Point, o Options) Path {
	return ToPath(Outline(points, o))
}
