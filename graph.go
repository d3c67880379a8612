package graphbinary

import (
	"fmt"
)

//	Graph structure elements as they appear on the wire. IDs may be any
//	encodable value; labels are plain strings.

type Vertex struct {
	ID    interface{}
	Label string
}

func (v Vertex) String() string {
	return fmt.Sprintf("v[%v]", v.ID)
}

type Edge struct {
	ID    interface{}
	Label string
	InV   Vertex
	OutV  Vertex
}

func (e Edge) String() string {
	return fmt.Sprintf("e[%v][%v-%s->%v]", e.ID, e.OutV.ID, e.Label, e.InV.ID)
}

type Property struct {
	Key   string
	Value interface{}
}

func (p Property) String() string {
	return fmt.Sprintf("p[%s->%v]", p.Key, p.Value)
}

type VertexProperty struct {
	ID    interface{}
	Label string
	Value interface{}
}

func (vp VertexProperty) String() string {
	return fmt.Sprintf("vp[%s->%v]", vp.Label, vp.Value)
}

//	A traversal history: per-step labels alongside the objects visited.
type Path struct {
	Labels  []interface{}
	Objects []interface{}
}

func (p Path) String() string {
	return fmt.Sprintf("path[%v]", p.Objects)
}

//	Placeholder for the graph type code; serialization of whole graphs
//	is not supported.
type Graph struct{}

//	Set distinguishes set semantics from plain slices when encoding.
//	The codec does not deduplicate elements.
type Set []interface{}
