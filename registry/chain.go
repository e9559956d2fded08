package registry

import (
	"github.com/dHofmeister/transforms/buffer"
	"github.com/dHofmeister/transforms/timestamp"
	"github.com/dHofmeister/transforms/transform"
)

// frameData is the per-child-frame transform history, shared by both the
// synchronous and asynchronous registry implementations.
type frameData map[string]*buffer.Buffer

func addTransform(data frameData, t transform.Transform, maxAge timestamp.Duration) {
	b, ok := data[t.Child]
	if !ok {
		b = buffer.New(maxAge)
		data[t.Child] = b
	}
	b.Insert(t)
}

func getTransform(data frameData, from, to string, at timestamp.Timestamp) (transform.Transform, error) {
	fromChain, fromErr := getTransformChain(data, from, to, at)
	toChain, toErr := getTransformChain(data, to, from, at)

	switch {
	case fromErr == nil && toErr == nil:
		truncateAtCommonParent(&fromChain, &toChain)
		reverseAndInvert(&toChain)
		return combineTransforms(fromChain, toChain)
	case fromErr == nil:
		return combineTransforms(fromChain, nil)
	case toErr == nil:
		reverseAndInvert(&toChain)
		return combineTransforms(nil, toChain)
	default:
		return transform.Transform{}, &NotFoundError{From: from, To: to}
	}
}

// getTransformChain walks the buffer tree from frame "from" towards its
// ancestors, stopping as soon as it reaches "to" or runs out of known
// parents. The returned chain is ordered from "from" outward.
func getTransformChain(data frameData, from, to string, at timestamp.Timestamp) ([]transform.Transform, error) {
	var chain []transform.Transform
	currentFrame := from

	for {
		frameBuffer, ok := data[currentFrame]
		if !ok {
			break
		}
		tf, err := frameBuffer.Get(at)
		if err != nil {
			break
		}
		chain = append(chain, tf)
		currentFrame = tf.Parent
		if currentFrame == to {
			return chain, nil
		}
	}

	if len(chain) == 0 {
		return nil, &NotFoundError{From: from, To: to}
	}
	return chain, nil
}

// truncateAtCommonParent trims each chain down to (and including) the
// first transform whose parent frame also appears as a parent frame in
// the other chain, using each chain's pre-inversion parent labeling.
func truncateAtCommonParent(fromChain, toChain *[]transform.Transform) {
	if index := findCommonParentIndex(*fromChain, *toChain); index >= 0 {
		*fromChain = (*fromChain)[:index+1]
	}
	if index := findCommonParentIndex(*toChain, *fromChain); index >= 0 {
		*toChain = (*toChain)[:index+1]
	}
}

func findCommonParentIndex(chain, other []transform.Transform) int {
	for i, tf := range chain {
		for _, otherTf := range other {
			if otherTf.Parent == tf.Parent {
				return i
			}
		}
	}
	return -1
}

// reverseAndInvert reverses chain in place and replaces each element with
// its inverse.
func reverseAndInvert(chain *[]transform.Transform) {
	c := *chain
	reversed := make([]transform.Transform, len(c))
	for i, tf := range c {
		reversed[len(c)-1-i] = tf.Inverse()
	}
	*chain = reversed
}

// combineTransforms concatenates fromChain and toChain and folds them into
// a single transform via repeated composition, finally inverting the
// result (the fold accumulates child=from, and the caller wants a
// from->to transform, so the accumulated parent=>from transform is
// inverted to yield from=>to).
func combineTransforms(fromChain, toChain []transform.Transform) (transform.Transform, error) {
	combined := append(append([]transform.Transform{}, fromChain...), toChain...)
	if len(combined) == 0 {
		return transform.Transform{}, ErrTransformTreeEmpty
	}

	final := combined[0]
	for _, tf := range combined[1:] {
		composed, err := tf.Compose(final)
		if err != nil {
			return transform.Transform{}, err
		}
		final = composed
	}

	return final.Inverse(), nil
}
