package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
)

func TestEveryPageRenders(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, name := range Pages {
		var buf bytes.Buffer
		if err := r.Render(&buf, name, Page{Title: name}, nil); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if !strings.Contains(buf.String(), `action="/reset-db"`) {
			t.Errorf("%s: layout missing reset form", name)
		}
	}
}

func TestUnknownPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(&bytes.Buffer{}, "nope", Page{}, nil); err == nil {
		t.Fatal("expected error for unknown view")
	}
}

func TestRentalsPageFormatsDates(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	back := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	page := Page{
		Title:      "Rentals",
		ResetToken: "tok123",
		Data: map[string]any{
			"rentals": []model.RentalRow{
				{ID: 1, RentalDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ReturnDate: &back, CustomerName: "Ada Lovelace"},
				{ID: 2, RentalDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), CustomerName: "Alan Turing"},
			},
			"customers": []model.Option{{ID: 1, Label: "Ada Lovelace"}},
		},
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, "rentals", page, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"2024-03-01", "2024-03-08", "Not returned", `value="tok123"`, "Ada Lovelace"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCustomersPageUsesFullName(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	page := Page{Title: "Customers", Data: map[string]any{
		"customers": []model.CustomerRow{{
			Customer:         model.Customer{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
			CurrentlyRenting: 1,
		}},
	}}
	var buf bytes.Buffer
	if err := r.Render(&buf, "customers", page, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1 - Ada Lovelace") {
		t.Error("customer dropdown should label entries with the full name")
	}
}

func TestPriceFormatting(t *testing.T) {
	if got := funcs["price"].(func(float64) string)(19.9); got != "19.90" {
		t.Errorf("price = %q", got)
	}
	if got := formatOptionalDate(nil); got != "" {
		t.Errorf("nil date = %q", got)
	}
}
