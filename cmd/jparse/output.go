// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"

	"github.com/creachadair/jparse"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// writeValue writes a rendering of v to w in the given format.
func writeValue(w io.Writer, format string, v jparse.Value) error {
	switch format {
	case "debug":
		dumpConfig.Fdump(w, v)
		return nil
	case "summary":
		s := summarize(v)
		_, err := fmt.Fprintf(w, "kind: %v\nnodes: %d\ndepth: %d\n", v.Kind(), s.nodes, s.depth)
		return err
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

type stats struct {
	nodes int // total number of values, including the root
	depth int // maximum nesting depth; a scalar has depth 1
}

func summarize(v jparse.Value) stats {
	var kids []jparse.Value
	switch t := v.(type) {
	case jparse.Array:
		kids = t
	case jparse.Object:
		for _, m := range t {
			kids = append(kids, m.Value)
		}
	}
	out := stats{nodes: 1, depth: 1}
	for _, kid := range kids {
		ks := summarize(kid)
		out.nodes += ks.nodes
		out.depth = max(out.depth, ks.depth+1)
	}
	return out
}
