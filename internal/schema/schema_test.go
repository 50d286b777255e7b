package schema

import (
	"errors"
	"testing"
	"time"
)

func TestValidatePayloadAcceptsCompleteExperience(t *testing.T) {
	spec, err := ForCollection(CollectionExperience)
	if err != nil {
		t.Fatalf("ForCollection: %v", err)
	}

	payload := map[string]any{
		"title":       "Acme Corp",
		"logo":        "/assets/logos/acme.svg",
		"description": "Backend work",
		"startDate":   time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
		"current":     true,
	}
	if err := ValidatePayload(spec, payload); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidatePayloadRejectsMissingRequiredField(t *testing.T) {
	spec, err := ForCollection(CollectionPosts)
	if err != nil {
		t.Fatalf("ForCollection: %v", err)
	}

	err = ValidatePayload(spec, map[string]any{
		"title": "No publish date",
		"tags":  []string{"go"},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}

	issues := Issues(err)
	if len(issues) == 0 {
		t.Fatal("expected located issues")
	}
}

func TestValidatePayloadRejectsWrongTypes(t *testing.T) {
	spec, err := ForCollection(CollectionProjects)
	if err != nil {
		t.Fatalf("ForCollection: %v", err)
	}

	err = ValidatePayload(spec, map[string]any{
		"title":       "Garden",
		"description": "d",
		"url":         "https://example.com",
		"techs":       []any{"go", 42},
	})
	if err == nil {
		t.Fatal("expected type violation for techs entry")
	}
}

func TestForCollectionUnknown(t *testing.T) {
	if _, err := ForCollection("pages"); !errors.Is(err, ErrSchemaUnknown) {
		t.Fatalf("expected ErrSchemaUnknown, got %v", err)
	}
}

func TestCollectionSchemasCompile(t *testing.T) {
	for _, name := range Collections() {
		spec, err := ForCollection(name)
		if err != nil {
			t.Fatalf("ForCollection(%s): %v", name, err)
		}
		if err := ValidateSchema(spec); err != nil {
			t.Fatalf("schema %s should compile: %v", name, err)
		}
	}
}
