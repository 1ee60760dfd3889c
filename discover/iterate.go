package discover

import (
	"fmt"

	"github.com/gromgull/subdue-sub001/compress"
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/label"
)

// Iterate runs Run repeatedly, compressing the positive (and, if
// present, negative) graph by the best substructure of each pass
// before starting the next (spec.md §4.6's iterative-compression
// mode, driven by the -iterations flag). It stops early once a pass's
// best value no longer exceeds 1 — no further compression gain is
// possible — or once maxIterations passes have run (0 means
// unbounded).
//
// The substructure returned by each pass is recorded before its
// instances are compressed away, so callers see the uncompressed
// definition and instance list that was actually discovered.
func Iterate(pos, neg *graphstore.Graph, labels *label.Table, opts Options, maxIterations int) []*Substructure {
	var best []*Substructure

	subLabels := make(map[int]bool, len(opts.SubLabels))
	for k, v := range opts.SubLabels {
		subLabels[k] = v
	}

	curPos, curNeg := pos, neg
	for it := 0; maxIterations <= 0 || it < maxIterations; it++ {
		roundOpts := opts
		roundOpts.SubLabels = subLabels

		discovered := Run(curPos, curNeg, labels, roundOpts)
		if discovered.Len() == 0 {
			break
		}

		top := discovered.Items()[0]
		best = append(best, top)
		if top.Value <= 1 {
			break
		}

		subLabelIdx := labels.Intern(label.NewString(fmt.Sprintf("SUB_%d", it+1)))
		overlapLabelIdx := labels.Intern(label.NewString(fmt.Sprintf("OVERLAP_%d", it+1)))
		subLabels[subLabelIdx] = true

		curPos = compress.Compress(curPos, labels, top.Positive, subLabelIdx, overlapLabelIdx)
		if curNeg != nil {
			curNeg = compress.Compress(curNeg, labels, top.Negative, subLabelIdx, overlapLabelIdx)
		}
	}

	return best
}
