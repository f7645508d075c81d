package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apimerge/openapi-merge/document"
	"github.com/apimerge/openapi-merge/mergeerrors"
)

func baseDoc(title string) *document.Document {
	doc := document.New()
	doc.OpenAPI = "3.0.3"
	doc.Info = &document.Info{Title: title, Version: "1.0.0"}
	return doc
}

func TestMergeNoInputs(t *testing.T) {
	_, err := Merge(nil, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, mergeerrors.ErrNoInputs)
}

func TestMergeTwoIndependentInputs(t *testing.T) {
	docA := baseDoc("A")
	docA.Paths.Set("/pets", &document.PathItem{Get: &document.Operation{OperationID: "listPets"}})
	docA.Components.Schemas.Set("Pet", &document.Schema{Type: "object"})

	docB := baseDoc("B")
	docB.Paths.Set("/orders", &document.PathItem{Get: &document.Operation{OperationID: "listOrders"}})
	docB.Components.Schemas.Set("Order", &document.Schema{Type: "object"})

	out, err := Merge([]*Input{{Document: docA}, {Document: docB}}, Options{})
	require.NoError(t, err)

	assert.True(t, out.Paths.Has("/pets"))
	assert.True(t, out.Paths.Has("/orders"))
	assert.Equal(t, 2, out.Components.Schemas.Len())
	assert.Equal(t, "A", out.Info.Title, "first input's info wins outright")
}

func TestMergeIdenticalContentSchemaCollisionFolds(t *testing.T) {
	docA := baseDoc("A")
	docA.Components.Schemas.Set("Pet", &document.Schema{Type: "object", Properties: map[string]*document.Schema{
		"name": {Type: "string"},
	}})

	docB := baseDoc("B")
	docB.Components.Schemas.Set("Pet", &document.Schema{Type: "object", Properties: map[string]*document.Schema{
		"name": {Type: "string"},
	}})
	docB.Paths.Set("/pets/{id}", &document.PathItem{Get: &document.Operation{
		OperationID: "getPet",
		Responses: &document.Responses{Codes: map[string]*document.Response{
			"200": {Content: map[string]*document.MediaType{
				"application/json": {Schema: &document.Schema{Ref: "#/components/schemas/Pet"}},
			}},
		}},
	}})

	out, err := Merge([]*Input{{Document: docA}, {Document: docB}}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Components.Schemas.Len(), "identical-content collisions fold into one entry")
	item, _ := out.Paths.Get("/pets/{id}")
	schema := item.Get.Responses.Codes["200"].Content["application/json"].Schema
	assert.Equal(t, "#/components/schemas/Pet", schema.Ref, "unchanged ref needs no rewrite")
}

func TestMergeDifferentContentSchemaCollisionWithoutDisputeGetsNumericSuffix(t *testing.T) {
	docA := baseDoc("A")
	docA.Components.Schemas.Set("Pet", &document.Schema{Type: "object"})

	docB := baseDoc("B")
	docB.Components.Schemas.Set("Pet", &document.Schema{Type: "string"})
	docB.Paths.Set("/pets/{id}", &document.PathItem{Get: &document.Operation{
		OperationID: "getPet",
		Responses: &document.Responses{Codes: map[string]*document.Response{
			"200": {Content: map[string]*document.MediaType{
				"application/json": {Schema: &document.Schema{Ref: "#/components/schemas/Pet"}},
			}},
		}},
	}})

	out, err := Merge([]*Input{{Document: docA}, {Document: docB}}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Components.Schemas.Len())
	_, ok := out.Components.Schemas.Get("Pet1")
	assert.True(t, ok)

	item, _ := out.Paths.Get("/pets/{id}")
	schema := item.Get.Responses.Codes["200"].Content["application/json"].Schema
	assert.Equal(t, "#/components/schemas/Pet1", schema.Ref, "the ref inside the second input's own scratch copy is rewritten")
}

func TestMergePathModificationThenDuplicateFails(t *testing.T) {
	docA := baseDoc("A")
	docA.Paths.Set("/pets", &document.PathItem{Get: &document.Operation{OperationID: "listPetsA"}})

	docB := baseDoc("B")
	docB.Paths.Set("/old/orders", &document.PathItem{Get: &document.Operation{OperationID: "listOrdersB"}})

	out, err := Merge([]*Input{
		{Document: docA},
		{Document: docB, PathModification: &PathModification{StripStart: "/old", Prepend: ""}},
	}, Options{})
	require.NoError(t, err)
	assert.True(t, out.Paths.Has("/pets"))
	assert.True(t, out.Paths.Has("/orders"))

	docC := baseDoc("C")
	docC.Paths.Set("/pets", &document.PathItem{Get: &document.Operation{OperationID: "listPetsC"}})

	_, err = Merge([]*Input{
		{Document: docA},
		{Document: docC},
	}, Options{})
	require.Error(t, err)
	var dupErr *mergeerrors.DuplicatePathsError
	require.ErrorAs(t, err, &dupErr)
}

func TestMergeOperationIDCollisionResolvedByDisputePrefix(t *testing.T) {
	docA := baseDoc("A")
	docA.Paths.Set("/pets", &document.PathItem{Get: &document.Operation{OperationID: "listPets"}})

	docB := baseDoc("B")
	docB.Paths.Set("/v2/pets", &document.PathItem{Get: &document.Operation{OperationID: "listPets"}})

	out, err := Merge([]*Input{
		{Document: docA},
		{Document: docB, Dispute: &Dispute{Kind: DisputeKindPrefix, Value: "v2_"}},
	}, Options{})
	require.NoError(t, err)

	item, _ := out.Paths.Get("/v2/pets")
	assert.Equal(t, "v2_listPets", item.Get.OperationID)
}

func TestMergeIncludeThenExcludeTagFilter(t *testing.T) {
	doc := baseDoc("A")
	doc.Paths.Set("/pets", &document.PathItem{
		Get:  &document.Operation{OperationID: "listPets", Tags: []string{"pets"}},
		Post: &document.Operation{OperationID: "createPet", Tags: []string{"pets", "admin"}},
	})
	doc.Paths.Set("/health", &document.PathItem{
		Get: &document.Operation{OperationID: "health", Tags: []string{"internal"}},
	})

	out, err := Merge([]*Input{{
		Document: doc,
		OperationSelection: &OperationSelection{
			IncludeTags: []string{"pets"},
			ExcludeTags: []string{"admin"},
		},
	}}, Options{})
	require.NoError(t, err)

	assert.False(t, out.Paths.Has("/health"), "excluded via not matching include")
	item, ok := out.Paths.Get("/pets")
	require.True(t, ok)
	assert.NotNil(t, item.Get)
	assert.Nil(t, item.Post, "excluded via explicit excludeTags, exclude wins")
}

func TestMergeOpenAPIVersionOverride(t *testing.T) {
	doc := baseDoc("A")
	out, err := Merge([]*Input{{Document: doc}}, Options{OpenAPIVersionOverride: "3.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "3.0.1", out.OpenAPI)
}

func TestMergeLegacyDisputePrefixIsLowered(t *testing.T) {
	docA := baseDoc("A")
	docA.Components.Schemas.Set("Pet", &document.Schema{Type: "object"})

	docB := baseDoc("B")
	docB.Components.Schemas.Set("Pet", &document.Schema{Type: "string"})

	out, err := Merge([]*Input{
		{Document: docA},
		{Document: docB, DisputePrefix: "legacy_"},
	}, Options{})
	require.NoError(t, err)

	_, ok := out.Components.Schemas.Get("legacy_Pet")
	assert.True(t, ok, "DisputePrefix lowers to a prefix Dispute applied on collision")
}

func TestMergeDoesNotMutateInputDocuments(t *testing.T) {
	docA := baseDoc("A")
	docA.Paths.Set("/pets", &document.PathItem{
		Get: &document.Operation{OperationID: "listPets", Tags: []string{"internal"}},
	})

	_, err := Merge([]*Input{{
		Document:           docA,
		OperationSelection: &OperationSelection{ExcludeTags: []string{"internal"}},
	}}, Options{})
	require.NoError(t, err)

	item, ok := docA.Paths.Get("/pets")
	require.True(t, ok)
	assert.NotNil(t, item.Get, "the merge engine must operate on a clone, never the caller's own document")
}
