// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
)

// Path finds a shortest route from start to goal over valid cells accepted by
// passable. A nil passable treats every valid cell as walkable. It returns nil
// when the goal cannot be reached. The goal itself is always enterable.
func (m *Map) Path(start, goal Cell, passable func(Cell) bool) []Cell {
	if !m.ValidCell(start) || !m.ValidCell(goal) {
		return nil
	}
	if passable == nil {
		passable = func(Cell) bool { return true }
	}
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Cell: start, Cost: 0, Parent: nil})
	costSoFar := make(map[Cell]int)
	costSoFar[start] = 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Cell == goal {
			return reconstructPath(current)
		}
		for _, neighbor := range m.Neighbors(current.Cell) {
			if neighbor != goal && !passable(neighbor) {
				continue
			}
			newCost := costSoFar[current.Cell] + 1
			if cost, exists := costSoFar[neighbor]; !exists || newCost < cost {
				costSoFar[neighbor] = newCost
				priority := newCost + neighbor.Distance(goal)
				heap.Push(pq, &Node{Cell: neighbor, Cost: priority, Parent: current})
			}
		}
	}
	return nil
}

// Unoccupied is a passable func that blocks cells holding a unit.
func (m *Map) Unoccupied(c Cell) bool {
	_, taken := m.Positions[c]
	return !taken
}

// PriorityQueue orders A* nodes by estimated total cost.
type PriorityQueue []*Node

type Node struct {
	Cell   Cell
	Cost   int
	Parent *Node
}

func (pq PriorityQueue) Len() int           { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool { return pq[i].Cost < pq[j].Cost }
func (pq PriorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Cell {
	path := []Cell{}
	for node != nil {
		path = append([]Cell{node.Cell}, path...)
		node = node.Parent
	}
	return path
}
