package annotation

import "testing"

func TestParseField(t *testing.T) {
	t.Parallel()

	f, err := ParseField("Emphasis.3")
	if err != nil {
		t.Fatalf("ParseField: %v", err)
	}
	if f.Column != ColumnEmphasis || f.Index != 3 {
		t.Fatalf("unexpected field %+v", f)
	}

	for _, bad := range []string{"notes", "notes.4", "notes.-1", "left.0"} {
		if _, err := ParseField(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestAnnotation_DefaultsAndWith(t *testing.T) {
	t.Parallel()

	var a Annotation
	if a.HeaderColor() != DefaultColor {
		t.Fatalf("expected default color, got %q", a.HeaderColor())
	}

	b := a.With(Field{Column: ColumnNotes, Index: 1}, "drives left")
	if a.Notes[1] != "" {
		t.Fatalf("With must not mutate the receiver")
	}
	if b.Notes[1] != "drives left" || b.Emphasis[1] != "" {
		t.Fatalf("unexpected annotation %+v", b)
	}
}
