// Package component models the nodes of a surface's component tree.
//
// An Instance is a typed, identified bag of properties that references
// other instances by id. Two registries drive tree walking and
// rendering: a children accessor per kind (how a Row, Card, or Tabs
// node names its ordered children) and an optional prop transform per
// kind (how resolved properties become host render props). Both are
// table insertions via RegisterChildren and RegisterTransform, so
// adding a component kind never touches walker code.
//
// Unknown wire types normalize to KindCustom and render as leaves.
// Cyclic child references are not defended against; producers own
// well-formedness.
package component
