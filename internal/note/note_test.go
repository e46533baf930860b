package note

import (
	"strings"
	"testing"
	"time"
)

func TestFilter(t *testing.T) {
	notes := []Note{
		{ID: "1", Title: "Foobar", Content: "first"},
		{ID: "2", Title: "baz", Content: "second"},
		{ID: "3", Title: "groceries", Content: "buy FOOD"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"blank returns all", "", []string{"1", "2", "3"}},
		{"whitespace returns all", "   ", []string{"1", "2", "3"}},
		{"title match", "foo", []string{"1", "3"}},
		{"case insensitive", "BAZ", []string{"2"}},
		{"content match", "second", []string{"2"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(notes, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) returned %d notes, want %d", tt.query, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("Filter(%q)[%d] = %s, want %s", tt.query, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilter_FooScenario(t *testing.T) {
	notes := []Note{{ID: "a", Title: "Foobar"}, {ID: "b", Title: "baz"}}
	got := Filter(notes, "foo")
	if len(got) != 1 || got[0].Title != "Foobar" {
		t.Fatalf("got %+v, want only Foobar", got)
	}
}

func TestExcerpt(t *testing.T) {
	short := strings.Repeat("a", ExcerptLimit)
	if got := Excerpt(short); got != short {
		t.Errorf("content at the limit should be kept, got %d chars", len(got))
	}

	long := strings.Repeat("b", ExcerptLimit+1)
	got := Excerpt(long)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("long content should end with ellipsis: %q", got)
	}
	if n := len([]rune(got)); n != ExcerptLimit-2 {
		t.Errorf("excerpt has %d runes, want %d", n, ExcerptLimit-2)
	}
}

func TestInputValidate(t *testing.T) {
	if err := (Input{Title: "  "}).Validate(); err != ErrTitleRequired {
		t.Errorf("blank title: got %v, want ErrTitleRequired", err)
	}
	if err := (Input{Title: "A"}).Validate(); err != nil {
		t.Errorf("valid title: unexpected error %v", err)
	}
	in := Input{Title: "  hi ", Content: "\nbody\n"}.Normalize()
	if in.Title != "hi" || in.Content != "body" {
		t.Errorf("Normalize() = %+v", in)
	}
}

func TestTempID(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	id := TempID(at, 0)
	if id != "temp-1700000000123" {
		t.Errorf("TempID = %q", id)
	}
	if got := TempID(at, 2); got != "temp-1700000000123-2" {
		t.Errorf("TempID with seq = %q", got)
	}
	if !IsTemp(id) || IsTemp("nt-1234") {
		t.Error("IsTemp misclassified ids")
	}
}

func TestTruncateWidth(t *testing.T) {
	if got := TruncateWidth("hello", 10); got != "hello" {
		t.Errorf("short string changed: %q", got)
	}
	got := TruncateWidth("hello world", 6)
	if got != "hello…" {
		t.Errorf("TruncateWidth = %q, want %q", got, "hello…")
	}
	if got := TruncateWidth("x", 0); got != "" {
		t.Errorf("zero width should be empty, got %q", got)
	}
}

func TestDisplayTitle(t *testing.T) {
	if (Note{}).DisplayTitle() != "Untitled" {
		t.Error("empty title should display as Untitled")
	}
	if (Note{Title: "x"}).DisplayTitle() != "x" {
		t.Error("title should be kept")
	}
}
