package api

import (
	"github.com/promptlab/promptlab/internal/config"
	"github.com/promptlab/promptlab/pkg/openapi"
)

// buildSpec assembles the OpenAPI document for the prompt and collection API.
// Paths are relative to the module base path, which is published as the
// server URL.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(schemas())
	addPromptPaths(spec)
	addCollectionPaths(spec)

	return spec
}

func schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Prompt": {
			Type:     "object",
			Required: []string{"id", "title", "content", "description", "collection_id", "created_at", "updated_at"},
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "string", Format: "uuid"},
				"title":         {Type: "string"},
				"content":       {Type: "string"},
				"description":   {Type: "string", Description: "Null when the prompt has no description"},
				"collection_id": {Type: "string", Format: "uuid", Description: "Null when the prompt is not in a collection"},
				"created_at":    {Type: "string", Format: "date-time"},
				"updated_at":    {Type: "string", Format: "date-time"},
			},
		},
		"PromptList": {
			Type:     "object",
			Required: []string{"prompts", "total"},
			Properties: map[string]*openapi.Schema{
				"prompts": {Type: "array", Items: openapi.SchemaRef("Prompt")},
				"total":   {Type: "integer"},
			},
		},
		"PromptCreate":  promptInput(),
		"PromptReplace": promptInput(),
		"PromptPatch": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title":         openapi.StringSchema("Prompt title", 1, 200),
				"content":       openapi.StringSchema("Prompt template text", 1, 0),
				"description":   openapi.StringSchema("Prompt summary", 0, 500),
				"collection_id": {Type: "string", Format: "uuid", Description: "Relink to an existing collection; omit to keep the current link"},
			},
		},
		"PromptVariables": {
			Type:     "object",
			Required: []string{"variables", "total"},
			Properties: map[string]*openapi.Schema{
				"variables": {Type: "array", Items: &openapi.Schema{Type: "string"}, Description: "Placeholder names in order of first appearance"},
				"total":     {Type: "integer"},
			},
		},
		"Collection": {
			Type:     "object",
			Required: []string{"id", "name", "description", "created_at"},
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"description": {Type: "string", Description: "Null when the collection has no description"},
				"created_at":  {Type: "string", Format: "date-time"},
			},
		},
		"CollectionList": {
			Type:     "object",
			Required: []string{"collections", "total"},
			Properties: map[string]*openapi.Schema{
				"collections": {Type: "array", Items: openapi.SchemaRef("Collection")},
				"total":       {Type: "integer"},
			},
		},
		"CollectionCreate": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name":        openapi.StringSchema("Collection name", 1, 100),
				"description": openapi.StringSchema("Collection summary", 0, 500),
			},
		},
	}
}

func promptInput() *openapi.Schema {
	return &openapi.Schema{
		Type:     "object",
		Required: []string{"title", "content"},
		Properties: map[string]*openapi.Schema{
			"title":         openapi.StringSchema("Prompt title", 1, 200),
			"content":       openapi.StringSchema("Prompt template text", 1, 0),
			"description":   openapi.StringSchema("Prompt summary", 0, 500),
			"collection_id": {Type: "string", Format: "uuid", Description: "Existing collection to link"},
		},
	}
}

func addPromptPaths(spec *openapi.Spec) {
	spec.Paths["/prompts"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:     "List prompts",
			Description: "Returns all prompts, newest first.",
			Tags:        []string{"prompts"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("collection_id", "string", "Only prompts in this collection", false),
				openapi.QueryParam("search", "string", "Case-insensitive match on title and description", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Prompt listing", "PromptList"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Create prompt",
			Tags:        []string{"prompts"},
			RequestBody: openapi.RequestBodyJSON("PromptCreate", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created prompt", "Prompt"),
				400: openapi.ResponseRef("BadRequest"),
				422: openapi.ResponseRef("ValidationFailed"),
			},
		},
	}

	spec.Paths["/prompts/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get prompt",
			Tags:       []string{"prompts"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Prompt identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Requested prompt", "Prompt"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Put: &openapi.Operation{
			Summary:     "Replace prompt",
			Description: "Replaces every field. Omitted optional fields are cleared, including the collection link.",
			Tags:        []string{"prompts"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Prompt identifier")},
			RequestBody: openapi.RequestBodyJSON("PromptReplace", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Replaced prompt", "Prompt"),
				400: openapi.ResponseRef("BadRequest"),
				404: openapi.ResponseRef("NotFound"),
				422: openapi.ResponseRef("ValidationFailed"),
			},
		},
		Patch: &openapi.Operation{
			Summary:     "Update prompt",
			Description: "Updates only the provided fields. Absent fields keep their values.",
			Tags:        []string{"prompts"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Prompt identifier")},
			RequestBody: openapi.RequestBodyJSON("PromptPatch", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated prompt", "Prompt"),
				400: openapi.ResponseRef("BadRequest"),
				404: openapi.ResponseRef("NotFound"),
				422: openapi.ResponseRef("ValidationFailed"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete prompt",
			Tags:       []string{"prompts"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Prompt identifier")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Prompt deleted"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/prompts/{id}/variables"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:     "List prompt variables",
			Description: "Extracts {{placeholder}} names from the prompt content.",
			Tags:        []string{"prompts"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Prompt identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Extracted variables", "PromptVariables"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func addCollectionPaths(spec *openapi.Spec) {
	spec.Paths["/collections"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List collections",
			Tags:    []string{"collections"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Collection listing", "CollectionList"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Create collection",
			Tags:        []string{"collections"},
			RequestBody: openapi.RequestBodyJSON("CollectionCreate", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created collection", "Collection"),
				400: openapi.ResponseRef("BadRequest"),
				422: openapi.ResponseRef("ValidationFailed"),
			},
		},
	}

	spec.Paths["/collections/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get collection",
			Tags:       []string{"collections"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Collection identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Requested collection", "Collection"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:     "Delete collection",
			Description: "Deletes the collection and unlinks every prompt that referenced it. Prompts themselves are kept.",
			Tags:        []string{"collections"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Collection identifier")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Collection deleted"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}
