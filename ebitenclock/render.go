package ebitenclock

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/clockface"
)

type commandKind uint8

const (
	commandSprite commandKind = iota
	commandText
)

// renderCommand is one draw emitted during traversal, in tree order.
type renderCommand struct {
	kind      commandKind
	transform [6]float64
	image     *ebiten.Image
	label     *Label
	color     Color
	alpha     float64
	shadow    *clockface.Shadow
	node      *Node
}

// geom converts the command transform to an ebiten.GeoM.
func (c *renderCommand) geom() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, c.transform[0])
	g.SetElement(1, 0, c.transform[1])
	g.SetElement(0, 1, c.transform[2])
	g.SetElement(1, 1, c.transform[3])
	g.SetElement(0, 2, c.transform[4])
	g.SetElement(1, 2, c.transform[5])
	return g
}

// traverse walks the tree depth-first in ZIndex order, updating transforms
// and emitting a command for every visible sprite and text node. Hidden
// subtrees still have their transforms refreshed so they are correct when
// shown again.
func (s *Scene) traverse(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	if !n.Visible {
		for _, child := range n.children {
			updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
		}
		return
	}

	switch n.Type {
	case NodeTypeSprite:
		s.commands = append(s.commands, renderCommand{
			kind:      commandSprite,
			transform: n.worldTransform,
			image:     n.image(),
			color:     n.Color,
			alpha:     n.worldAlpha,
			shadow:    n.Shadow,
			node:      n,
		})
	case NodeTypeText:
		if n.Label != nil && n.Label.Font != nil && n.Label.Content != "" {
			s.commands = append(s.commands, renderCommand{
				kind:      commandText,
				transform: n.worldTransform,
				label:     n.Label,
				color:     n.Color,
				alpha:     n.worldAlpha,
				node:      n,
			})
		}
	}

	for _, child := range n.orderedChildren() {
		s.traverse(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// submit draws the command list onto target. Shadows are drawn immediately
// before the sprite that casts them.
func (s *Scene) submit(target *ebiten.Image) int {
	draws := 0
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.kind {
		case commandSprite:
			if cmd.shadow != nil && cmd.shadow.Opacity > 0 {
				s.shadow.draw(target, cmd)
				draws++
			}
			op.GeoM = cmd.geom()
			op.ColorScale.Reset()
			cmd.color.scale(&op.ColorScale, cmd.alpha)
			op.Filter = ebiten.FilterLinear
			target.DrawImage(cmd.image, &op)
		case commandText:
			drawLabel(target, cmd.label, cmd.geom(), cmd.color, cmd.alpha)
		}
		draws++
	}
	return draws
}
