package merge

import "github.com/apimerge/openapi-merge/document"

// ModifyFunc renames one reference string. It may fail (the ambiguous
// rewrite-table lookup case), so the walker threads the error back to its
// caller instead of panicking the way the original engine this spec was
// distilled from does.
type ModifyFunc func(ref string) (string, error)

// WalkDocument visits every $ref in doc and rewrites it in place via modify
// (C1). It is the single point of truth for where references live in the
// tree; a new schema construct or component field needs exactly one new
// call site here.
func WalkDocument(doc *document.Document, modify ModifyFunc) error {
	if doc == nil {
		return nil
	}
	if doc.Paths != nil {
		for pathItem := range doc.Paths.Values() {
			if err := walkPathItem(pathItem, modify); err != nil {
				return err
			}
		}
	}
	if doc.Components != nil {
		if err := walkComponents(doc.Components, modify); err != nil {
			return err
		}
	}
	return nil
}

func walkPathItem(item *document.PathItem, modify ModifyFunc) error {
	if item == nil {
		return nil
	}
	// A PathItem that is itself a $ref is left untouched by the walker: the
	// spec scopes "Reference | Inline" positions to schema/parameter/etc
	// slots, and operation selection (C3) explicitly does not touch
	// ref-valued PathItems either.
	if item.Ref != "" {
		return nil
	}
	for _, param := range item.Parameters {
		if err := walkParameter(param, modify); err != nil {
			return err
		}
	}
	for _, op := range item.Operations() {
		if err := walkOperation(op, modify); err != nil {
			return err
		}
	}
	return nil
}

func walkOperation(op *document.Operation, modify ModifyFunc) error {
	if op == nil {
		return nil
	}
	for _, param := range op.Parameters {
		if err := walkParameter(param, modify); err != nil {
			return err
		}
	}
	if op.RequestBody != nil {
		if err := walkRequestBody(op.RequestBody, modify); err != nil {
			return err
		}
	}
	if op.Responses != nil {
		if err := walkResponses(op.Responses, modify); err != nil {
			return err
		}
	}
	for _, cb := range op.Callbacks {
		if err := walkCallback(cb, modify); err != nil {
			return err
		}
	}
	return nil
}

func walkParameter(p *document.Parameter, modify ModifyFunc) error {
	if p == nil {
		return nil
	}
	if p.Ref != "" {
		rewritten, err := modify(p.Ref)
		if err != nil {
			return err
		}
		p.Ref = rewritten
		return nil
	}
	if err := walkSchema(p.Schema, modify); err != nil {
		return err
	}
	for _, ex := range p.Examples {
		if err := walkExample(ex, modify); err != nil {
			return err
		}
	}
	return walkMediaTypeMap(p.Content, modify)
}

func walkRequestBody(rb *document.RequestBody, modify ModifyFunc) error {
	if rb == nil {
		return nil
	}
	if rb.Ref != "" {
		rewritten, err := modify(rb.Ref)
		if err != nil {
			return err
		}
		rb.Ref = rewritten
		return nil
	}
	return walkMediaTypeMap(rb.Content, modify)
}

func walkHeader(h *document.Header, modify ModifyFunc) error {
	if h == nil {
		return nil
	}
	if h.Ref != "" {
		rewritten, err := modify(h.Ref)
		if err != nil {
			return err
		}
		h.Ref = rewritten
		return nil
	}
	if err := walkSchema(h.Schema, modify); err != nil {
		return err
	}
	for _, ex := range h.Examples {
		if err := walkExample(ex, modify); err != nil {
			return err
		}
	}
	return walkMediaTypeMap(h.Content, modify)
}

func walkExample(ex *document.Example, modify ModifyFunc) error {
	if ex == nil || ex.Ref == "" {
		return nil
	}
	rewritten, err := modify(ex.Ref)
	if err != nil {
		return err
	}
	ex.Ref = rewritten
	return nil
}

func walkLink(l *document.Link, modify ModifyFunc) error {
	if l == nil || l.Ref == "" {
		return nil
	}
	rewritten, err := modify(l.Ref)
	if err != nil {
		return err
	}
	l.Ref = rewritten
	return nil
}

func walkMediaTypeMap(content map[string]*document.MediaType, modify ModifyFunc) error {
	for _, mt := range content {
		if err := walkMediaType(mt, modify); err != nil {
			return err
		}
	}
	return nil
}

func walkMediaType(mt *document.MediaType, modify ModifyFunc) error {
	if mt == nil {
		return nil
	}
	if err := walkSchema(mt.Schema, modify); err != nil {
		return err
	}
	for _, ex := range mt.Examples {
		if err := walkExample(ex, modify); err != nil {
			return err
		}
	}
	for _, enc := range mt.Encoding {
		for _, h := range enc.Headers {
			if err := walkHeader(h, modify); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkResponses(r *document.Responses, modify ModifyFunc) error {
	if r == nil {
		return nil
	}
	if r.Default != nil {
		if err := walkResponse(r.Default, modify); err != nil {
			return err
		}
	}
	for _, resp := range r.Codes {
		if err := walkResponse(resp, modify); err != nil {
			return err
		}
	}
	return nil
}

func walkResponse(resp *document.Response, modify ModifyFunc) error {
	if resp == nil {
		return nil
	}
	if resp.Ref != "" {
		rewritten, err := modify(resp.Ref)
		if err != nil {
			return err
		}
		resp.Ref = rewritten
		return nil
	}
	for _, h := range resp.Headers {
		if err := walkHeader(h, modify); err != nil {
			return err
		}
	}
	if err := walkMediaTypeMap(resp.Content, modify); err != nil {
		return err
	}
	for _, l := range resp.Links {
		if err := walkLink(l, modify); err != nil {
			return err
		}
	}
	return nil
}

func walkCallback(cb *document.Callback, modify ModifyFunc) error {
	if cb == nil {
		return nil
	}
	for pathItem := range cb.Values() {
		if err := walkPathItem(pathItem, modify); err != nil {
			return err
		}
	}
	return nil
}

func walkSchema(s *document.Schema, modify ModifyFunc) error {
	if s == nil {
		return nil
	}
	if s.Ref != "" {
		rewritten, err := modify(s.Ref)
		if err != nil {
			return err
		}
		s.Ref = rewritten
		return nil
	}
	for _, prop := range s.Properties {
		if err := walkSchema(prop, modify); err != nil {
			return err
		}
	}
	if err := walkSchema(s.AdditionalProperties, modify); err != nil {
		return err
	}
	if err := walkSchema(s.Items, modify); err != nil {
		return err
	}
	if err := walkSchema(s.Not, modify); err != nil {
		return err
	}
	for _, sub := range s.AllOf {
		if err := walkSchema(sub, modify); err != nil {
			return err
		}
	}
	for _, sub := range s.AnyOf {
		if err := walkSchema(sub, modify); err != nil {
			return err
		}
	}
	for _, sub := range s.OneOf {
		if err := walkSchema(sub, modify); err != nil {
			return err
		}
	}
	return nil
}

func walkComponents(c *document.Components, modify ModifyFunc) error {
	for s := range c.Schemas.Values() {
		if err := walkSchema(s, modify); err != nil {
			return err
		}
	}
	for r := range c.Responses.Values() {
		if err := walkResponse(r, modify); err != nil {
			return err
		}
	}
	for p := range c.Parameters.Values() {
		if err := walkParameter(p, modify); err != nil {
			return err
		}
	}
	for ex := range c.Examples.Values() {
		if err := walkExample(ex, modify); err != nil {
			return err
		}
	}
	for rb := range c.RequestBodies.Values() {
		if err := walkRequestBody(rb, modify); err != nil {
			return err
		}
	}
	for h := range c.Headers.Values() {
		if err := walkHeader(h, modify); err != nil {
			return err
		}
	}
	for l := range c.Links.Values() {
		if err := walkLink(l, modify); err != nil {
			return err
		}
	}
	for cb := range c.Callbacks.Values() {
		if err := walkCallback(cb, modify); err != nil {
			return err
		}
	}
	// securitySchemes are never renamed (§4.6), so the walker has nothing to
	// rewrite there.
	return nil
}
