package mail

import (
	"strings"
	"testing"

	"github.com/shopfront/shopfront/internal/model"
)

func TestRenderOrderConfirmation_Subtotals(t *testing.T) {
	t.Parallel()

	order := model.Order{
		Items: []model.OrderItem{
			{Name: "Widget", Price: 10, Quantity: 2},
			{Name: "Gadget", Price: 5, Quantity: 3},
		},
		TotalAmount: 35,
	}

	body, err := RenderOrderConfirmation(order)
	if err != nil {
		t.Fatalf("RenderOrderConfirmation failed: %v", err)
	}

	// Subtotals are price x quantity at two decimals
	for _, want := range []string{"$20.00", "$15.00", "$35.00"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s:\n%s", want, body)
		}
	}

	for _, want := range []string{"Widget", "Gadget", "Thank you for your purchase!"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s", want)
		}
	}
}

func TestRenderOrderConfirmation_EscapesItemNames(t *testing.T) {
	t.Parallel()

	order := model.Order{
		Items: []model.OrderItem{
			{Name: "<script>alert(1)</script>", Price: 1, Quantity: 1},
		},
		TotalAmount: 1,
	}

	body, err := RenderOrderConfirmation(order)
	if err != nil {
		t.Fatalf("RenderOrderConfirmation failed: %v", err)
	}

	if strings.Contains(body, "<script>") {
		t.Error("item names must be HTML-escaped")
	}
}

func TestNew_RequiresCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing host", Config{Port: 587, Username: "u", Password: "p", From: "shop@example.com"}},
		{"missing username", Config{Host: "smtp.example.com", Port: 587, Password: "p", From: "shop@example.com"}},
		{"missing password", Config{Host: "smtp.example.com", Port: 587, Username: "u", From: "shop@example.com"}},
		{"missing from", Config{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := New(tt.cfg); err == nil {
				t.Error("expected error for incomplete SMTP configuration")
			}
		})
	}
}

func TestMoneyFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		want   string
	}{
		{20, "20.00"},
		{15, "15.00"},
		{9.5, "9.50"},
		{0.1, "0.10"},
		{1234.567, "1234.57"},
	}

	for _, tt := range tests {
		if got := formatMoney(tt.amount); got != tt.want {
			t.Errorf("formatMoney(%v) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}
