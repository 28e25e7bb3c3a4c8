package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewProduct(t *testing.T) {
	product := NewProduct("Widget", "A widget", "https://example.com/w.png", 9.99)

	if product.ID == "" {
		t.Fatal("NewProduct did not generate an ID")
	}

	if _, err := uuid.Parse(product.ID); err != nil {
		t.Errorf("NewProduct generated a non-UUID ID %q: %v", product.ID, err)
	}

	if err := product.Validate(); err != nil {
		t.Errorf("new product failed validation: %v", err)
	}

	other := NewProduct("Widget", "A widget", "https://example.com/w.png", 9.99)
	if other.ID == product.ID {
		t.Error("two products share the same generated ID")
	}
}

func TestProductValidate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr bool
	}{
		{
			name:    "valid",
			product: Product{ID: uuid.New().String(), Title: "A", Price: 5},
		},
		{
			name:    "missing ID",
			product: Product{Title: "A", Price: 5},
			wantErr: true,
		},
		{
			name:    "blank title",
			product: Product{ID: uuid.New().String(), Title: "   ", Price: 5},
			wantErr: true,
		},
		{
			name:    "zero price",
			product: Product{ID: uuid.New().String(), Title: "A", Price: 0},
			wantErr: true,
		},
		{
			name:    "negative price",
			product: Product{ID: uuid.New().String(), Title: "A", Price: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCandidateFromFields(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]string
		wantKind  RowErrorKind
		wantField string
	}{
		{
			name:   "valid row",
			fields: map[string]string{"title": "A", "price": "5", "count": "2"},
		},
		{
			name:   "valid row with optional fields",
			fields: map[string]string{"title": "A", "description": "d", "image": "i", "price": "5.50", "count": "0"},
		},
		{
			name:      "missing title",
			fields:    map[string]string{"title": "", "price": "5", "count": "2"},
			wantKind:  MissingField,
			wantField: "title",
		},
		{
			name:      "whitespace title",
			fields:    map[string]string{"title": "  ", "price": "5", "count": "2"},
			wantKind:  MissingField,
			wantField: "title",
		},
		{
			name:      "negative price",
			fields:    map[string]string{"title": "B", "price": "-1", "count": "2"},
			wantKind:  InvalidValue,
			wantField: "price",
		},
		{
			name:      "zero price",
			fields:    map[string]string{"title": "B", "price": "0", "count": "2"},
			wantKind:  InvalidValue,
			wantField: "price",
		},
		{
			name:      "non-numeric price",
			fields:    map[string]string{"title": "B", "price": "cheap", "count": "2"},
			wantKind:  InvalidValue,
			wantField: "price",
		},
		{
			name:      "missing price",
			fields:    map[string]string{"title": "B", "count": "2"},
			wantKind:  InvalidValue,
			wantField: "price",
		},
		{
			name:      "fractional count",
			fields:    map[string]string{"title": "B", "price": "5", "count": "2.5"},
			wantKind:  InvalidValue,
			wantField: "count",
		},
		{
			name:      "negative count",
			fields:    map[string]string{"title": "B", "price": "5", "count": "-3"},
			wantKind:  InvalidValue,
			wantField: "count",
		},
		{
			name:      "missing count",
			fields:    map[string]string{"title": "B", "price": "5"},
			wantKind:  InvalidValue,
			wantField: "count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate, rowErr := CandidateFromFields(tt.fields)

			if tt.wantKind == "" {
				if rowErr != nil {
					t.Fatalf("CandidateFromFields() unexpected error: %v", rowErr)
				}
				if candidate.Title != tt.fields["title"] {
					t.Errorf("title = %q, want %q", candidate.Title, tt.fields["title"])
				}
				return
			}

			if rowErr == nil {
				t.Fatal("CandidateFromFields() expected an error, got none")
			}
			if rowErr.Kind != tt.wantKind {
				t.Errorf("error kind = %q, want %q", rowErr.Kind, tt.wantKind)
			}
			if rowErr.Field != tt.wantField {
				t.Errorf("error field = %q, want %q", rowErr.Field, tt.wantField)
			}
			if candidate != nil {
				t.Error("invalid row produced a candidate")
			}
		})
	}
}

func TestJoinStock(t *testing.T) {
	product := NewProduct("A", "desc", "img", 5)

	joined := JoinStock(product, NewStock(product.ID, 7))
	if joined.Count != 7 {
		t.Errorf("joined count = %d, want 7", joined.Count)
	}
	if joined.ID != product.ID || joined.Title != "A" {
		t.Error("joined product fields do not match source product")
	}

	// Missing stock defaults the count to zero, as the list handler did
	joined = JoinStock(product, nil)
	if joined.Count != 0 {
		t.Errorf("joined count without stock = %d, want 0", joined.Count)
	}
}

func TestBatchOutcomeHasEmpty(t *testing.T) {
	item := func(count int) CreatedItem {
		p := NewProduct("A", "", "", 5)
		return CreatedItem{Product: p, Stock: NewStock(p.ID, count)}
	}

	tests := []struct {
		name    string
		outcome BatchOutcome
		want    bool
	}{
		{
			name:    "all stocked",
			outcome: BatchOutcome{Items: []CreatedItem{item(2), item(1)}},
			want:    false,
		},
		{
			name:    "one zero count",
			outcome: BatchOutcome{Items: []CreatedItem{item(2), item(0)}},
			want:    true,
		},
		{
			name:    "empty batch",
			outcome: BatchOutcome{},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.HasEmpty(); got != tt.want {
				t.Errorf("HasEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
