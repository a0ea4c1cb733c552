package models

import (
	"reflect"
	"testing"
)

func TestNormalizeFoldsLegacyFields(t *testing.T) {
	l := Listing{
		LegacyType:  "house",
		LegacyImage: "old.jpg",
	}
	l.Normalize()

	if !reflect.DeepEqual(l.Types, []string{"house"}) {
		t.Fatalf("expected legacy type folded into Types, got %v", l.Types)
	}
	if !reflect.DeepEqual(l.Images, []string{"old.jpg"}) {
		t.Fatalf("expected legacy image folded into Images, got %v", l.Images)
	}
	if l.PrincipalImage != "old.jpg" {
		t.Fatalf("expected principal image to default to the first image, got %q", l.PrincipalImage)
	}
	if l.LegacyType != "" || l.LegacyImage != "" {
		t.Fatal("legacy fields must be cleared after normalization")
	}
}

func TestNormalizeKeepsModernShape(t *testing.T) {
	l := Listing{
		Types:          []string{"apartment"},
		Images:         []string{"a.jpg", "b.jpg"},
		PrincipalImage: "b.jpg",
		LegacyType:     "house",
		LegacyImage:    "old.jpg",
	}
	l.Normalize()

	if !reflect.DeepEqual(l.Types, []string{"apartment"}) {
		t.Fatalf("modern Types must win over the legacy field, got %v", l.Types)
	}
	if l.PrincipalImage != "b.jpg" {
		t.Fatalf("an explicit principal image must be kept, got %q", l.PrincipalImage)
	}
}

func TestHasPrincipalImage(t *testing.T) {
	l := Listing{Images: []string{"a.jpg", "b.jpg"}, PrincipalImage: "b.jpg"}
	if !l.HasPrincipalImage() {
		t.Fatal("principal image in the list should be accepted")
	}

	l.PrincipalImage = "c.jpg"
	if l.HasPrincipalImage() {
		t.Fatal("principal image outside the list should be rejected")
	}

	l.PrincipalImage = ""
	if !l.HasPrincipalImage() {
		t.Fatal("an unset principal image is valid")
	}
}
