package services

import (
	"errors"
	"testing"

	"github.com/hesapmarket/marketplace-backend/internal/dto"
)

func TestSuggestions(t *testing.T) {
	db := testDB(t)
	svc := NewSuggestionService(db)

	suggestion, err := svc.Add(&dto.AddSuggestionRequest{
		GameName:    "  Silksong  ",
		Username:    "alice",
		Description: "please",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if suggestion.GameName != "Silksong" {
		t.Errorf("game name = %q, want trimmed Silksong", suggestion.GameName)
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, ok := all[suggestion.ID]; !ok {
		t.Errorf("suggestion %d missing from listing", suggestion.ID)
	}

	if err := svc.Delete(suggestion.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(suggestion.ID); !errors.Is(err, ErrSuggestionNotFound) {
		t.Errorf("second delete: got %v, want ErrSuggestionNotFound", err)
	}
}

func TestAddSuggestionValidation(t *testing.T) {
	db := testDB(t)
	svc := NewSuggestionService(db)

	cases := []struct {
		name string
		req  dto.AddSuggestionRequest
	}{
		{"blank game name", dto.AddSuggestionRequest{Username: "alice"}},
		{"blank username", dto.AddSuggestionRequest{GameName: "Silksong"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Add(&tc.req); !errors.Is(err, ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}
