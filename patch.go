package jsonedit

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jsonedit/go-jsonedit/ir"
)

// ApplyPatch applies an RFC 6902 JSON patch to doc and returns the
// patched document. The document round-trips through its JSON
// encoding; object field order is preserved.
func ApplyPatch(doc *ir.Node, patchData []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return nil, err
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	res := &ir.Node{}
	if err := res.UnmarshalJSON(out); err != nil {
		return nil, err
	}
	return res, nil
}
