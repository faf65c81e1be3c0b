package ldtk

// Two-key defaulting resolution. A single LDtk entity or int-grid cell may
// match several registrations (exact, layer-generic, key-generic, fully
// generic); the permutation order below decides which one wins, and
// downstream dispatch depends on it being exactly this order.

// TryEachPermutation wraps a and b in optionals and tries each present /
// absent permutation as inputs to fn, returning the first hit. The
// permutations are tried in this order:
//
//  1. a, b
//  2. nil, b
//  3. a, nil
//  4. nil, nil
//
// Note the asymmetry: when only one generic dimension matches, the second
// key wins.
func TryEachPermutation[A, B, R any](a A, b B, fn func(a *A, b *B) (R, bool)) (R, bool) {
	if r, ok := fn(&a, &b); ok {
		return r, true
	}
	if r, ok := fn(nil, &b); ok {
		return r, true
	}
	if r, ok := fn(&a, nil); ok {
		return r, true
	}
	return fn(nil, nil)
}

type permKey[A, B comparable] struct {
	hasA bool
	a    A
	hasB bool
	b    B
}

// PermutationMap is a registry keyed by pairs of optional keys. Lookups
// resolve through TryEachPermutation, so an exact dual-key registration
// beats "any A with this B", which beats "this A regardless of B", which
// beats the fully generic fallback.
type PermutationMap[A, B comparable, V any] struct {
	m map[permKey[A, B]]V
}

// NewPermutationMap returns an empty registry.
func NewPermutationMap[A, B comparable, V any]() *PermutationMap[A, B, V] {
	return &PermutationMap[A, B, V]{m: make(map[permKey[A, B]]V)}
}

// Set registers v under the optional key pair. A nil key is generic for
// that dimension. Re-registering a pair replaces the previous value.
func (pm *PermutationMap[A, B, V]) Set(a *A, b *B, v V) {
	pm.m[makePermKey(a, b)] = v
}

// Resolve returns the most specific registration matching (a, b), or def
// when no permutation is registered.
func (pm *PermutationMap[A, B, V]) Resolve(a A, b B, def V) V {
	v, ok := TryEachPermutation(a, b, func(a *A, b *B) (V, bool) {
		v, ok := pm.m[makePermKey(a, b)]
		return v, ok
	})
	if !ok {
		return def
	}
	return v
}

// Len returns the number of registrations.
func (pm *PermutationMap[A, B, V]) Len() int { return len(pm.m) }

func makePermKey[A, B comparable](a *A, b *B) permKey[A, B] {
	var k permKey[A, B]
	if a != nil {
		k.hasA = true
		k.a = *a
	}
	if b != nil {
		k.hasB = true
		k.b = *b
	}
	return k
}

// Ptr returns a pointer to v. Convenience for building optional keys:
//
//	reg.Set(ldtk.Ptr("Player"), nil, spawner)
func Ptr[T any](v T) *T { return &v }
