// Package anneal - swap move generation.
package anneal

import "math/rand"

// proposeSwap draws a single swap move against the current state: out
// is a uniform-random member, in is a non-member chosen per policy.
//
//   - MoveDegreeBiased: the non-member of maximum degree; ties go to
//     the first candidate in sorted vertex order, so the choice is
//     deterministic for a fixed graph.
//   - MoveUniform: uniform among non-members.
//
// When every vertex is already a member there is no admissible move
// and ok is false; the caller treats that as a skipped iteration, not
// an error.
//
// vertices must be the graph's sorted vertex list and degrees the
// precomputed degree of each vertex.
// Complexity: O(V).
func proposeSwap(s *coverState, vertices []string, degrees map[string]int, policy MovePolicy, rng *rand.Rand) (out, in string, ok bool) {
	if s.size() == len(vertices) {
		return "", "", false
	}

	// The leaving member is drawn first, before any policy branch.
	out = s.memberList[rng.Intn(s.size())]

	switch policy {
	case MoveUniform:
		candidates := make([]string, 0, len(vertices)-s.size())
		for _, v := range vertices {
			if _, member := s.members[v]; !member {
				candidates = append(candidates, v)
			}
		}
		in = candidates[rng.Intn(len(candidates))]

	default: // MoveDegreeBiased
		bestDeg := -1
		for _, v := range vertices {
			if _, member := s.members[v]; member {
				continue
			}
			if d := degrees[v]; d > bestDeg {
				bestDeg = d
				in = v
			}
		}
	}

	return out, in, true
}
