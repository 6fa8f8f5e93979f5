// Package render draws maze trees for people: PNG snapshots and plain-text
// grids.
//
// The PNG shows every cell as a node and every cell→parent link as a line
// with an arrow head pointing at the parent. Roots are red, the solution
// path is blue with cyan nodes, and edges created by the latest steps are
// orange. The ASCII form shows walls and passages only, with roots and the
// solution marked.
package render
