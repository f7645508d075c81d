package document

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/apimerge/openapi-merge/orderedmap"
)

// ComponentKind names one of the eight reusable component namespaces that
// share a common merge algorithm (C5). securitySchemes is deliberately not
// one of these: it is folded with a first-wins rule instead (§4.6).
type ComponentKind string

const (
	KindSchemas       ComponentKind = "schemas"
	KindResponses     ComponentKind = "responses"
	KindParameters    ComponentKind = "parameters"
	KindExamples      ComponentKind = "examples"
	KindRequestBodies ComponentKind = "requestBodies"
	KindHeaders       ComponentKind = "headers"
	KindLinks         ComponentKind = "links"
	KindCallbacks     ComponentKind = "callbacks"
)

// ComponentKinds lists the eight shared-algorithm kinds in the fixed order
// the orchestrator processes them in (§4.8).
var ComponentKinds = []ComponentKind{
	KindSchemas, KindResponses, KindParameters, KindExamples,
	KindRequestBodies, KindHeaders, KindLinks, KindCallbacks,
}

// Components holds the reusable object definitions of a document.
type Components struct {
	Schemas         *orderedmap.Map[string, *Schema]         `json:"schemas,omitempty"`
	Responses       *orderedmap.Map[string, *Response]       `json:"responses,omitempty"`
	Parameters      *orderedmap.Map[string, *Parameter]      `json:"parameters,omitempty"`
	Examples        *orderedmap.Map[string, *Example]        `json:"examples,omitempty"`
	RequestBodies   *orderedmap.Map[string, *RequestBody]    `json:"requestBodies,omitempty"`
	Headers         *orderedmap.Map[string, *Header]         `json:"headers,omitempty"`
	SecuritySchemes *orderedmap.Map[string, *SecurityScheme] `json:"securitySchemes,omitempty"`
	Links           *orderedmap.Map[string, *Link]           `json:"links,omitempty"`
	Callbacks       *orderedmap.Map[string, *Callback]       `json:"callbacks,omitempty"`

	// Extra captures specification extensions (fields starting with "x-").
	Extra map[string]any `json:"-"`
}

// NewComponents returns an empty, fully-initialized Components value. The
// merge accumulator always starts from this rather than a bare struct
// literal, since every sub-map must be ready to Set into.
func NewComponents() *Components {
	return &Components{
		Schemas:         orderedmap.New[string, *Schema](),
		Responses:       orderedmap.New[string, *Response](),
		Parameters:      orderedmap.New[string, *Parameter](),
		Examples:        orderedmap.New[string, *Example](),
		RequestBodies:   orderedmap.New[string, *RequestBody](),
		Headers:         orderedmap.New[string, *Header](),
		SecuritySchemes: orderedmap.New[string, *SecurityScheme](),
		Links:           orderedmap.New[string, *Link](),
		Callbacks:       orderedmap.New[string, *Callback](),
	}
}

// IsEmpty reports whether c has no entries of any kind.
func (c *Components) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Schemas.Len() == 0 && c.Responses.Len() == 0 && c.Parameters.Len() == 0 &&
		c.Examples.Len() == 0 && c.RequestBodies.Len() == 0 && c.Headers.Len() == 0 &&
		c.SecuritySchemes.Len() == 0 && c.Links.Len() == 0 && c.Callbacks.Len() == 0
}

// MarshalYAML renders Components as a YAML mapping with a fixed key order
// (schemas first, securitySchemes last among the component kinds, then any
// Extra entries) regardless of construction order, matching the
// conventional OpenAPI component ordering.
func (c *Components) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, empty bool, value any) error {
		if empty {
			return nil
		}
		k := &yaml.Node{}
		if err := k.Encode(key); err != nil {
			return err
		}
		v := &yaml.Node{}
		if err := v.Encode(value); err != nil {
			return err
		}
		node.Content = append(node.Content, k, v)
		return nil
	}
	if err := add("schemas", c.Schemas.Len() == 0, c.Schemas); err != nil {
		return nil, err
	}
	if err := add("responses", c.Responses.Len() == 0, c.Responses); err != nil {
		return nil, err
	}
	if err := add("parameters", c.Parameters.Len() == 0, c.Parameters); err != nil {
		return nil, err
	}
	if err := add("examples", c.Examples.Len() == 0, c.Examples); err != nil {
		return nil, err
	}
	if err := add("requestBodies", c.RequestBodies.Len() == 0, c.RequestBodies); err != nil {
		return nil, err
	}
	if err := add("headers", c.Headers.Len() == 0, c.Headers); err != nil {
		return nil, err
	}
	if err := add("links", c.Links.Len() == 0, c.Links); err != nil {
		return nil, err
	}
	if err := add("callbacks", c.Callbacks.Len() == 0, c.Callbacks); err != nil {
		return nil, err
	}
	if err := add("securitySchemes", c.SecuritySchemes.Len() == 0, c.SecuritySchemes); err != nil {
		return nil, err
	}
	for k, v := range c.Extra {
		if err := add(k, false, v); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// UnmarshalYAML populates Components from a YAML mapping node.
func (c *Components) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("document: components must be a mapping")
	}
	*c = *NewComponents()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		val := node.Content[i+1]
		var err error
		switch key {
		case "schemas":
			err = val.Decode(c.Schemas)
		case "responses":
			err = val.Decode(c.Responses)
		case "parameters":
			err = val.Decode(c.Parameters)
		case "examples":
			err = val.Decode(c.Examples)
		case "requestBodies":
			err = val.Decode(c.RequestBodies)
		case "headers":
			err = val.Decode(c.Headers)
		case "links":
			err = val.Decode(c.Links)
		case "callbacks":
			err = val.Decode(c.Callbacks)
		case "securitySchemes":
			err = val.Decode(c.SecuritySchemes)
		default:
			var extra any
			if err := val.Decode(&extra); err != nil {
				return err
			}
			if c.Extra == nil {
				c.Extra = make(map[string]any)
			}
			c.Extra[key] = extra
			continue
		}
		if err != nil {
			return fmt.Errorf("document: components.%s: %w", key, err)
		}
	}
	return nil
}

// Document is the root of an OpenAPI 3.0 document tree.
type Document struct {
	OpenAPI      string                `yaml:"openapi" json:"openapi"`
	Info         *Info                 `yaml:"info" json:"info"`
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Paths        *Paths                `yaml:"paths" json:"paths"`
	Components   *Components           `yaml:"components,omitempty" json:"components,omitempty"`

	// Extra captures specification extensions (fields starting with "x-").
	Extra map[string]any `yaml:",inline" json:"-"`
}

// New returns an empty Document with initialized Paths and Components maps.
func New() *Document {
	return &Document{
		Paths:      orderedmap.New[string, *PathItem](),
		Components: NewComponents(),
	}
}

// Clone returns a deep copy of d, independent of d's own trees. The merge
// orchestrator works on a clone of each input document ("scratch copy" in
// the merge engine's terms) so that operation selection and empty-PathItem
// pruning never mutate the caller's input.
//
// The clone is produced by a YAML round-trip rather than a field-by-field
// copy: it is the one mechanical way to deep-copy every nested pointer,
// slice, and Extra map in this tree without hand-maintaining a Clone method
// per type as new schema constructs are added.
func (d *Document) Clone() (*Document, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("document: clone marshal: %w", err)
	}
	clone := New()
	if err := yaml.Unmarshal(data, clone); err != nil {
		return nil, fmt.Errorf("document: clone unmarshal: %w", err)
	}
	return clone, nil
}

// documentAlias avoids infinite recursion through Document's own
// MarshalJSON/UnmarshalJSON when delegating to encoding/json for the
// fixed fields.
type documentAlias Document

// MarshalJSON renders the fixed fields plus the top-level x-* extensions
// merged into the same object, since encoding/json (unlike the YAML path)
// has no inline-map tag to do this automatically.
func (d *Document) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal((*documentAlias)(d))
	if err != nil {
		return nil, err
	}
	if len(d.Extra) == 0 {
		return base, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(base, &obj); err != nil {
		return nil, err
	}
	for k, v := range d.Extra {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		obj[k] = raw
	}
	return json.Marshal(obj)
}

// UnmarshalJSON populates the fixed fields and captures any remaining
// top-level "x-*" fields into Extra.
func (d *Document) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*documentAlias)(d)); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		if !strings.HasPrefix(k, "x-") {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		if d.Extra == nil {
			d.Extra = make(map[string]any)
		}
		d.Extra[k] = val
	}
	return nil
}
