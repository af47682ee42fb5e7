package main

import (
	"bytes"
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBuild_Text(t *testing.T) {
	out, err := execute(t, "build")
	require.NoError(t, err)
	assert.Equal(t, "minimal-viable: Product parts: PartA1\n"+
		"full-featured: Product parts: PartA1, PartB1, PartC1\n"+
		"custom: Product parts: PartA1, PartC1\n", out)
}

func TestBuild_Manifest(t *testing.T) {
	out, err := execute(t, "build", "full-featured", "--manifest", "--custom", "PartB1,PartB1")
	require.NoError(t, err)
	assert.Equal(t, "full-featured: Manifest: PartA1 x1, PartB1 x1, PartC1 x1\n"+
		"custom: Manifest: PartB1 x2\n", out)
}

func TestBuild_JSON(t *testing.T) {
	out, err := execute(t, "build", "minimal-viable", "--custom=", "-o", "json")
	require.NoError(t, err)
	jsonassert.New(t).Assertf(out, `[
		{"recipe": "minimal-viable", "product": {"id": "<<PRESENCE>>", "parts": ["PartA1"]}}
	]`)
}

func TestBuild_UnknownRecipe(t *testing.T) {
	_, err := execute(t, "build", "deluxe")
	assert.ErrorContains(t, err, "unknown recipe")
}

func TestRecipes(t *testing.T) {
	out, err := execute(t, "recipes")
	require.NoError(t, err)
	assert.Equal(t, "full-featured\nminimal-viable\n", out)
}

func TestClone_Text(t *testing.T) {
	out, err := execute(t, "clone")
	require.NoError(t, err)
	assert.Equal(t, "Call Method from PROTOTYPE_1 with field : 90\n"+
		"Call Method from PROTOTYPE_2 with field : 10\n", out)
}

func TestClone_YAML(t *testing.T) {
	out, err := execute(t, "clone", "PROTOTYPE_2", "--value", "7.5", "-o", "yaml")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []map[string]any{
		{"name": "PROTOTYPE_2", "variant": "ConcretePrototype2", "field": 7.5},
	}, got)
}

func TestClone_UnknownTag(t *testing.T) {
	_, err := execute(t, "clone", "PROTOTYPE_3")
	assert.ErrorContains(t, err, "unknown tag PROTOTYPE_3")
}

func TestTags(t *testing.T) {
	out, err := execute(t, "tags", "-o", "json")
	require.NoError(t, err)
	jsonassert.New(t).Assertf(out, `["PROTOTYPE_1", "PROTOTYPE_2"]`)
}

func TestUnknownOutput(t *testing.T) {
	_, err := execute(t, "tags", "-o", "xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}
