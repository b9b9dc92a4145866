package typo

import "strings"

// segmentResult is the outcome of matching a request path against one
// parameterized template.
type segmentResult struct {
	distance int
	params   map[string]string
	path     string
}

// exactStructural attempts a zero-distance structural match: the segment
// counts are equal and every literal segment is identical after optional
// case folding. Parameters bind directly from the corresponding request
// segments.
func exactStructural(request []string, t Template, fold bool) (segmentResult, bool) {
	if len(request) != len(t.Segments) {
		return segmentResult{}, false
	}

	for i, s := range t.Segments {
		if s.Param {
			continue
		}
		if foldCase(s.Name, fold) != foldCase(request[i], fold) {
			return segmentResult{}, false
		}
	}

	params := bindParams(t, request)
	return segmentResult{
		params: params,
		path:   rebuildPath(t, params),
	}, true
}

// fuzzySegments walks the request and template segments in lockstep and
// accumulates a distance. Positions beyond the shorter sequence cost 1
// each. Parameter segments bind the corresponding request segment at no
// cost. Literal segments cost their pairwise edit distance, and a single
// literal segment whose own distance exceeds the tolerance disqualifies
// the template outright, regardless of the accumulated total.
func fuzzySegments(request []string, t Template, tolerance int, fold bool) (segmentResult, bool) {
	// Each missing or extra segment costs at least 1, so a count gap
	// wider than the tolerance can never recover.
	if gap := len(request) - len(t.Segments); gap > tolerance || -gap > tolerance {
		return segmentResult{}, false
	}

	distance := 0
	var params map[string]string

	longest := len(request)
	if len(t.Segments) > longest {
		longest = len(t.Segments)
	}

	for i := 0; i < longest; i++ {
		if i >= len(request) || i >= len(t.Segments) {
			// Missing or extra segment. A parameter the request cannot
			// reach still gets an entry so every parameter of a matched
			// template ends up bound.
			if i < len(t.Segments) && t.Segments[i].Param {
				params = bind(params, t.Segments[i].Name, "")
			}
			distance++
			continue
		}

		s := t.Segments[i]
		if s.Param {
			params = bind(params, s.Name, request[i])
			continue
		}

		d := Distance(foldCase(s.Name, fold), foldCase(request[i], fold))
		if d > tolerance {
			return segmentResult{}, false
		}
		distance += d
	}

	return segmentResult{
		distance: distance,
		params:   params,
		path:     rebuildPath(t, params),
	}, true
}

// bindParams binds every parameter segment of t from the equally long
// request segment slice.
func bindParams(t Template, request []string) map[string]string {
	var params map[string]string
	for i, s := range t.Segments {
		if s.Param {
			params = bind(params, s.Name, request[i])
		}
	}
	return params
}

// bind adds a parameter binding, allocating the map lazily.
func bind(params map[string]string, name, value string) map[string]string {
	if params == nil {
		params = make(map[string]string)
	}
	params[name] = value
	return params
}

// rebuildPath reconstructs the corrected path: literal segments come from
// the template, parameter segments from their bound request values.
// Parameters bound to the empty string are dropped rather than rendered
// as empty segments.
func rebuildPath(t Template, params map[string]string) string {
	var b strings.Builder
	for _, s := range t.Segments {
		v := s.Name
		if s.Param {
			v = params[s.Name]
			if v == "" {
				continue
			}
		}
		b.WriteByte('/')
		b.WriteString(v)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// foldCase lower-cases s when folding is enabled.
func foldCase(s string, fold bool) string {
	if !fold {
		return s
	}
	return strings.ToLower(s)
}
