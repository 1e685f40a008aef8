// Package porphyry models Porphyrian-style taxonomies as an in-memory
// labeled graph whose node identifiers live in a Van Emde Boas index,
// with unit-weight shortest-path queries between any two terms.
//
// 🚀 What is porphyry?
//
//	A small, focused library that brings together:
//		• vebindex — a recursive Van Emde Boas integer-set index:
//		  O(log log U) insert and membership, ordered enumeration
//		• arbor    — a labeled undirected graph allocating dense node
//		  ids from the index, with Dijkstra (unit weights) between labels
//		• taxonomy — deterministic sample and synthetic tree builders,
//		  plus YAML taxonomy documents
//		• render   — ASCII tree printing and Graphviz DOT emission
//
// ✨ Why porphyry?
//
//   - Minimal API, clear naming — ensure a node, connect two terms,
//     ask for the shortest chain between them
//   - Sentinel errors everywhere; branch with errors.Is
//   - Coarse-grained locking on the graph, safe for concurrent readers
//
// Quick ASCII example:
//
//	substance
//	  +-body
//	    +-living
//	      +-animal
//	        +-rational_animal
//	        | +-man
//	        |   +-Plato
//	        +-irrational_animal
//	          +-bird
//	            +-chicken
//
// ShortestPath("Plato", "chicken") walks the six hops back up through
// man, rational_animal, animal, irrational_animal and bird.
//
//	go get github.com/arborlab/porphyry
package porphyry
