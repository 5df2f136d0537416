package model

import (
	"encoding/json"
	"testing"
)

func TestMoneyUnmarshalNumber(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`12.99`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Invalid() {
		t.Fatal("number input marked invalid")
	}
	if m.String() != "12.99" {
		t.Fatalf("got %s, want 12.99", m.String())
	}
}

func TestMoneyUnmarshalNumericString(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`"4.99"`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Invalid() || m.String() != "4.99" {
		t.Fatalf("got invalid=%v value=%s", m.Invalid(), m.String())
	}
}

func TestMoneyUnmarshalInvalidInputFlagsNotFails(t *testing.T) {
	for _, input := range []string{`"abc"`, `""`, `"12.9.9"`} {
		var m Money
		if err := json.Unmarshal([]byte(input), &m); err != nil {
			t.Fatalf("input %s: unexpected decode error: %v", input, err)
		}
		if !m.Invalid() {
			t.Fatalf("input %s: not flagged invalid", input)
		}
		if !m.IsZero() {
			t.Fatalf("input %s: invalid value not zero", input)
		}
	}
}

func TestMoneyUnmarshalNull(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`null`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Invalid() || !m.IsZero() {
		t.Fatalf("null should decode to a valid zero, got invalid=%v", m.Invalid())
	}
}

func TestMoneyMarshalTwoDecimalNumber(t *testing.T) {
	data, err := json.Marshal(MustMoney("5"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "5.00" {
		t.Fatalf("got %s, want 5.00", data)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	subtotal := MustMoney("12.99").MulInt(2).Add(MustMoney("4.99"))
	if subtotal.String() != "30.97" {
		t.Fatalf("subtotal = %s, want 30.97", subtotal.String())
	}
	total := subtotal.Add(MustMoney("1.99")).Round2()
	if total.String() != "32.96" {
		t.Fatalf("total = %s, want 32.96", total.String())
	}
}
