/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: layout.go
Description: Circular layout for graph views. Nodes sit on a circle in ID order;
self-loops are drawn as arcs above their node and opposing edges bend apart.
*/

package render

import (
	"fmt"
	"math"

	"github.com/kleascm/mentor/pkg/model"
)

const (
	nodeRadius = 22.0
	margin     = 90.0
)

type nodeShape struct {
	ID        int
	Label     string
	X, Y      float64
	Start     bool
	Accepting bool
	Rejecting bool
}

type edgeShape struct {
	From, To int
	Path     string
	Label    string
	LX, LY   float64
}

type layout struct {
	Width, Height float64
	Nodes         []nodeShape
	Edges         []edgeShape
}

func circleLayout(view *model.GraphView) layout {
	n := len(view.Nodes)
	radius := math.Max(120, float64(n)*32)
	if n == 1 {
		radius = 0
	}
	cx, cy := radius+margin, radius+margin
	out := layout{Width: 2 * cx, Height: 2 * cy}

	pos := make(map[int]int, n)
	for i, node := range view.Nodes {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		out.Nodes = append(out.Nodes, nodeShape{
			ID:        node.ID,
			Label:     node.Label,
			X:         cx + radius*math.Cos(angle),
			Y:         cy + radius*math.Sin(angle),
			Start:     node.Start,
			Accepting: node.Accepting,
			Rejecting: node.Rejecting,
		})
		pos[node.ID] = i
	}

	reverse := make(map[[2]int]bool, len(view.Edges))
	for _, e := range view.Edges {
		reverse[[2]int{e.From, e.To}] = true
	}
	for _, e := range view.Edges {
		from, to := out.Nodes[pos[e.From]], out.Nodes[pos[e.To]]
		shape := edgeShape{From: e.From, To: e.To, Label: e.Label}
		if e.From == e.To {
			x, y := from.X, from.Y-nodeRadius
			shape.Path = fmt.Sprintf("M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f", x-10, y, x-30, y-55, x+30, y-55, x+10, y)
			shape.LX, shape.LY = x, y-48
			out.Edges = append(out.Edges, shape)
			continue
		}

		dx, dy := to.X-from.X, to.Y-from.Y
		dist := math.Hypot(dx, dy)
		ux, uy := dx/dist, dy/dist
		sx, sy := from.X+ux*nodeRadius, from.Y+uy*nodeRadius
		ex, ey := to.X-ux*nodeRadius, to.Y-uy*nodeRadius
		mx, my := (sx+ex)/2, (sy+ey)/2
		bend := 0.0
		if reverse[[2]int{e.To, e.From}] {
			bend = 28
		}
		// control point on the left of the direction of travel
		qx, qy := mx+uy*bend, my-ux*bend
		shape.Path = fmt.Sprintf("M %.1f %.1f Q %.1f %.1f %.1f %.1f", sx, sy, qx, qy, ex, ey)
		shape.LX, shape.LY = (mx+qx)/2+uy*8, (my+qy)/2-ux*8
		out.Edges = append(out.Edges, shape)
	}
	return out
}
