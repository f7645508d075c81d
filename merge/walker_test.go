package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apimerge/openapi-merge/document"
)

func markRef(ref string) (string, error) {
	return ref + "!", nil
}

func TestWalkDocumentNil(t *testing.T) {
	assert.NoError(t, WalkDocument(nil, markRef))
}

func TestWalkDocumentRewritesSchemaRef(t *testing.T) {
	doc := document.New()
	doc.Components.Schemas.Set("Pet", &document.Schema{
		Properties: map[string]*document.Schema{
			"owner": {Ref: "#/components/schemas/Owner"},
		},
	})

	require.NoError(t, WalkDocument(doc, markRef))

	pet, _ := doc.Components.Schemas.Get("Pet")
	assert.Equal(t, "#/components/schemas/Owner!", pet.Properties["owner"].Ref)
}

func TestWalkDocumentRewritesParameterRef(t *testing.T) {
	doc := document.New()
	doc.Paths.Set("/pets", &document.PathItem{
		Get: &document.Operation{
			Parameters: []*document.Parameter{{Ref: "#/components/parameters/Limit"}},
		},
	})

	require.NoError(t, WalkDocument(doc, markRef))

	item, _ := doc.Paths.Get("/pets")
	assert.Equal(t, "#/components/parameters/Limit!", item.Get.Parameters[0].Ref)
}

func TestWalkDocumentSkipsRefPathItem(t *testing.T) {
	doc := document.New()
	doc.Paths.Set("/shared", &document.PathItem{Ref: "#/components/pathItems/Shared"})

	require.NoError(t, WalkDocument(doc, markRef))

	item, _ := doc.Paths.Get("/shared")
	assert.Equal(t, "#/components/pathItems/Shared", item.Ref, "a $ref PathItem is never rewritten by the walker")
}

func TestWalkDocumentRewritesResponseAndContent(t *testing.T) {
	doc := document.New()
	doc.Paths.Set("/pets", &document.PathItem{
		Get: &document.Operation{
			Responses: &document.Responses{
				Codes: map[string]*document.Response{
					"200": {
						Content: map[string]*document.MediaType{
							"application/json": {Schema: &document.Schema{Ref: "#/components/schemas/Pet"}},
						},
					},
				},
			},
		},
	})

	require.NoError(t, WalkDocument(doc, markRef))

	item, _ := doc.Paths.Get("/pets")
	schema := item.Get.Responses.Codes["200"].Content["application/json"].Schema
	assert.Equal(t, "#/components/schemas/Pet!", schema.Ref)
}

func TestWalkDocumentRewritesRequestBodyRef(t *testing.T) {
	doc := document.New()
	doc.Paths.Set("/pets", &document.PathItem{
		Post: &document.Operation{RequestBody: &document.RequestBody{Ref: "#/components/requestBodies/PetBody"}},
	})

	require.NoError(t, WalkDocument(doc, markRef))

	item, _ := doc.Paths.Get("/pets")
	assert.Equal(t, "#/components/requestBodies/PetBody!", item.Post.RequestBody.Ref)
}

func TestWalkDocumentRewritesCallbackPathItems(t *testing.T) {
	doc := document.New()
	cb := document.Callback{}
	cb.Set("{$request.body#/callbackUrl}", &document.PathItem{
		Post: &document.Operation{RequestBody: &document.RequestBody{Ref: "#/components/requestBodies/Event"}},
	})
	doc.Paths.Set("/subscribe", &document.PathItem{
		Post: &document.Operation{Callbacks: map[string]*document.Callback{"onEvent": &cb}},
	})

	require.NoError(t, WalkDocument(doc, markRef))

	item, _ := doc.Paths.Get("/subscribe")
	pathItem, ok := item.Post.Callbacks["onEvent"].Get("{$request.body#/callbackUrl}")
	require.True(t, ok)
	assert.Equal(t, "#/components/requestBodies/Event!", pathItem.Post.RequestBody.Ref)
}

func TestWalkDocumentRewritesComposedSchemas(t *testing.T) {
	doc := document.New()
	doc.Components.Schemas.Set("Pet", &document.Schema{
		AllOf: []*document.Schema{{Ref: "#/components/schemas/Animal"}},
		AnyOf: []*document.Schema{{Ref: "#/components/schemas/Named"}},
		OneOf: []*document.Schema{{Ref: "#/components/schemas/Tagged"}},
		Not:   &document.Schema{Ref: "#/components/schemas/Excluded"},
		Items: &document.Schema{Ref: "#/components/schemas/Item"},
	})

	require.NoError(t, WalkDocument(doc, markRef))

	pet, _ := doc.Components.Schemas.Get("Pet")
	assert.Equal(t, "#/components/schemas/Animal!", pet.AllOf[0].Ref)
	assert.Equal(t, "#/components/schemas/Named!", pet.AnyOf[0].Ref)
	assert.Equal(t, "#/components/schemas/Tagged!", pet.OneOf[0].Ref)
	assert.Equal(t, "#/components/schemas/Excluded!", pet.Not.Ref)
	assert.Equal(t, "#/components/schemas/Item!", pet.Items.Ref)
}

func TestWalkDocumentPropagatesModifyError(t *testing.T) {
	doc := document.New()
	doc.Components.Schemas.Set("Pet", &document.Schema{Ref: "#/components/schemas/Animal"})

	failing := func(ref string) (string, error) { return "", assert.AnError }
	err := WalkDocument(doc, failing)
	assert.ErrorIs(t, err, assert.AnError)
}
