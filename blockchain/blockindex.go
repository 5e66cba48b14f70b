// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

// BlockIndexView is the narrow, read-only view onto a block-index node
// that the difficulty retargeter and stake subsystem need. The real block
// index (its storage, its reorg handling, its on-disk persistence) is an
// external collaborator; this core only ever walks backward through it.
type BlockIndexView interface {
	// Prev returns the node's parent, or nil at the root of the chain.
	Prev() BlockIndexView

	// Height returns the node's height.
	Height() int64

	// Time returns the node's block timestamp as a Unix second count.
	Time() int64

	// Bits returns the node's compact difficulty target.
	Bits() uint32

	// IsProofOfWork reports whether the node's block used proof of work.
	IsProofOfWork() bool

	// IsProofOfStake reports whether the node's block used proof of
	// stake. Exactly one of IsProofOfWork/IsProofOfStake is true for any
	// node that isn't nil.
	IsProofOfStake() bool
}

// Node is a convenience, arena-addressed implementation of BlockIndexView
// for callers (tests, embedders without their own index) that have no
// block index of their own. Nodes are intended to live in a BlockIndex
// arena slice; Prev is a genuine back-reference to another *Node in that
// same arena rather than an index, since Go's garbage collector (unlike
// the original source's manual memory management) makes that safe.
type Node struct {
	prev           *Node
	height         int64
	time           int64
	bits           uint32
	isProofOfStake bool
}

// NewNode returns a new arena node linked to prev.
func NewNode(prev *Node, height int64, blockTime int64, bits uint32, isProofOfStake bool) *Node {
	return &Node{
		prev:           prev,
		height:         height,
		time:           blockTime,
		bits:           bits,
		isProofOfStake: isProofOfStake,
	}
}

// Prev implements BlockIndexView.
func (n *Node) Prev() BlockIndexView {
	if n == nil || n.prev == nil {
		return nil
	}
	return n.prev
}

// Height implements BlockIndexView.
func (n *Node) Height() int64 { return n.height }

// Time implements BlockIndexView.
func (n *Node) Time() int64 { return n.time }

// Bits implements BlockIndexView.
func (n *Node) Bits() uint32 { return n.bits }

// IsProofOfWork implements BlockIndexView.
func (n *Node) IsProofOfWork() bool { return !n.isProofOfStake }

// IsProofOfStake implements BlockIndexView.
func (n *Node) IsProofOfStake() bool { return n.isProofOfStake }

// BlockIndex is an append-only arena of Nodes. It exists purely as test and
// embedding scaffolding: production callers are expected to supply their
// own BlockIndexView implementation backed by their real chain state.
type BlockIndex struct {
	nodes []*Node
}

// NewBlockIndex returns an empty arena.
func NewBlockIndex() *BlockIndex {
	return &BlockIndex{}
}

// AddNode appends a node to the arena and returns it.
func (idx *BlockIndex) AddNode(prev *Node, height, blockTime int64, bits uint32, isProofOfStake bool) *Node {
	n := NewNode(prev, height, blockTime, bits, isProofOfStake)
	idx.nodes = append(idx.nodes, n)
	return n
}

// isNilView reports whether a BlockIndexView interface value is either a
// literal nil or a nil *Node wrapped in a non-nil interface, which is what
// a typed nil *Node passed through Node.Prev's return path would otherwise
// produce.
func isNilView(v BlockIndexView) bool {
	return IsNilIndex(v)
}

// IsNilIndex reports whether a BlockIndexView interface value is either a
// literal nil or a nil *Node wrapped in a non-nil interface. Other
// packages that walk a BlockIndexView they did not construct themselves
// (blockchain/stake, in particular) need the same check, since a plain
// `v == nil` comparison is not reliable once a nil *Node has crossed an
// interface boundary.
func IsNilIndex(v BlockIndexView) bool {
	if v == nil {
		return true
	}
	n, ok := v.(*Node)
	return ok && n == nil
}
