// Package bvh builds and traverses a Bounding Volume Hierarchy over a flat
// list of Hittables, turning an O(N) linear scan into an O(log N) tree walk.
package bvh

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/aabb"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Node is a single BVH node: leaves hold 1 or 2 primitives directly,
// internal nodes hold Left/Right children.
type Node struct {
	box         aabb.AABB
	left, right core.Hittable
	leaf        []core.Hittable
}

// New constructs a BVH from objects via a longest-axis midpoint split: union
// the bounding boxes, pick the longest axis, sort by that axis's box
// minimum, split the sorted list at its midpoint, and recurse. Construction
// is O(N log N); there is no surface-area-heuristic optimization, which is
// an accepted trade against a simpler, predictable build.
func New(objects []core.Hittable) *Node {
	items := make([]core.Hittable, len(objects))
	copy(items, objects)
	return build(items)
}

func build(objects []core.Hittable) *Node {
	box := aabb.Empty
	for _, o := range objects {
		box = box.Union(o.BoundingBox())
	}

	if len(objects) <= 2 {
		return &Node{box: box, leaf: objects}
	}

	axis := box.LongestAxis()
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
	})

	mid := len(objects) / 2
	return &Node{
		box:   box,
		left:  build(objects[:mid]),
		right: build(objects[mid:]),
	}
}

func (n *Node) Hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	if !n.box.Hit(r.Origin, r.Direction, tInterval) {
		return core.HitRecord{}, false
	}

	if n.leaf != nil {
		var best core.HitRecord
		hitAnything := false
		closest := tInterval.Max
		for _, o := range n.leaf {
			if rec, ok := o.Hit(r, vec3.NewInterval(tInterval.Min, closest)); ok {
				hitAnything = true
				closest = rec.T
				best = rec
			}
		}
		return best, hitAnything
	}

	leftRec, hitLeft := n.left.Hit(r, tInterval)
	closest := tInterval.Max
	if hitLeft {
		closest = leftRec.T
	}
	rightRec, hitRight := n.right.Hit(r, vec3.NewInterval(tInterval.Min, closest))
	if hitRight {
		return rightRec, true
	}
	return leftRec, hitLeft
}

func (n *Node) BoundingBox() aabb.AABB { return n.box }
