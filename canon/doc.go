// Package canon implements the Butler-Portugal double-coset minimization
// search: given a tensor and its attached symmetry generators, it finds
// the lexicographically least index arrangement reachable under the
// generated group and the accumulated sign of the permutation that
// reaches it (spec §4.4).
//
// # Candidates are read forward, not inverted
//
// A candidate permutation h is applied to the index sequence directly:
// slot i receives indices[h(i)], not indices[h⁻¹(i)] as
// perm.Permute (which implements the usual point-permutation action on
// a sequence) would compute. This is deliberate: the search builds h
// level by level from stabilizer-chain transversal representatives
// h = u_0 ∘ u_1 ∘ ... ∘ u_{n-1} (u_0 outermost, each deeper u_l drawn
// from Stab(0, ..., l-1)), chosen precisely so that h(l) is the value
// committed to at level l and stays fixed no matter which deeper
// u_{l+1}, ..., u_{n-1} a later level picks — u_0(0) never moves because
// every u_l for l >= 1 fixes point 0, and inductively h(l) for l <= i
// survives any extension at levels deeper than i. The mirror-image
// construction (reading h⁻¹ forward, or composing new transversal
// elements on the left) breaks this invariant: a level's committed slot
// value would keep changing as deeper levels are chosen, and the search
// would silently prune group elements it must keep. Both
// extendCandidates and placedIndex depend on this reading being
// consistent; applyCandidate renders the final arrangement the same way.
//
// # Minimum-selection vs. survivor equality
//
// spec §4.4's index total order breaks ties by original position so that
// it is a strict total order. But spec §3 defines two indices as "the
// same abstract index" by name and variance alone, and spec §9's open
// question (a) resolves Index.Position as a pure comparison tiebreaker,
// never a slot identity. Composing those: at each search level the
// *minimum value* m_i is still chosen with the full, position-breaking
// order (tensor.Index.Compare) so there is always a single deterministic
// m_i to compare against; but a candidate *survives* to the next level
// whenever its placed index is the same abstract index as m_i
// (tensor.Index.Equal, which ignores position), not only when it is the
// literal minimum object. Without this, two occurrences of the same name
// that only the generated group exchanges (A_{aba} under antisymmetry on
// slots {0,1} and {1,2}, whose group holds the transposition (0 2)) would
// never be recognized as producing the same written tensor, and the
// sign-collapse-to-zero case (spec §4.4's "Sign collapse → zero") would
// never trigger. A repeated index within one antisymmetric generator's
// own slots (A_{aa}) is caught earlier by tensor.IsZero, before the
// search runs.
package canon
