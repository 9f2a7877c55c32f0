// Package mbo implements Marriage-in-honey-Bees Optimization (MBO), a
// population metaheuristic for the 0/1 knapsack problem.
//
// Roles:
//   - Queen   — the best feasible genome found so far.
//   - Drone   — a random genome of which only half of the genes are present;
//     the other half is marked absent and inherited from the queen.
//   - Spermatheca — drones accepted during one mating flight.
//   - Brood   — larvae produced by crossover, mutation and worker care.
//   - Worker  — local improvement: repair to feasibility, then random
//     single-item additions kept when they fit and add value.
//
// One iteration is one mating flight:
//  1. energy, speed ~ U(0.5, 1); the energy drop per step is energy·0.5/|S|.
//  2. While energy remains and the spermatheca has room, a drone mates with
//     probability exp(-|f(queen')-f(drone)| / capacity / speed); the flying
//     queen' flips each gene with probability speed, and speed decays by Alpha.
//  3. Up to MaxBroods larvae are bred from random stored drones (each drone
//     mates once), mutated and improved by a worker.
//  4. The best larva replaces the queen on strict improvement.
//
// Several independent colonies may run concurrently (WithColonies); each
// owns a private RNG stream derived from the seed, so results are
// reproducible for a given seed and colony count.
//
// MBO never proves optimality. Use package knapsack for exact answers.
//
// Complexity: O(Iterations · (|S| + MaxBroods) · n) per colony.
package mbo
