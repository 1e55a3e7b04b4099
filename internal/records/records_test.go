package records

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Records
		wantErr bool
	}{
		{name: "canonical", data: "12\n7\n", want: Records{P1: 12, P2: 7}},
		{name: "no trailing newline", data: "3\n4", want: Records{P1: 3, P2: 4}},
		{name: "whitespace and CRLF", data: " 5 \r\n 6\r\n", want: Records{P1: 5, P2: 6}},
		{name: "extra lines ignored", data: "1\n2\n99\n", want: Records{P1: 1, P2: 2}},
		{name: "empty", data: "", wantErr: true},
		{name: "one line", data: "10\n", wantErr: true},
		{name: "text", data: "ten\n2\n", wantErr: true},
		{name: "blank second line", data: "10\n\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Fatalf("expected ErrMalformed, got %v", err)
				}
				if got != (Records{}) {
					t.Errorf("failed parse should yield zero records, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := string(Records{P1: 8, P2: 0}.Format()); got != "8\n0\n" {
		t.Errorf("Format = %q", got)
	}
}

func TestMerge(t *testing.T) {
	r := Records{P1: 10, P2: 3}
	if got := r.Merge(4, 9); got != (Records{P1: 10, P2: 9}) {
		t.Errorf("Merge = %+v", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.txt")
	s := NewFileStore(path)

	got, err := s.Load()
	if err == nil {
		t.Error("missing file should report an error")
	}
	if got != (Records{}) {
		t.Errorf("missing file should load zero records, got %+v", got)
	}

	if err := s.Save(Records{P1: 21, P2: 13}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "21\n13\n" {
		t.Errorf("file contents = %q", data)
	}

	got, err = s.Load()
	if err != nil || got != (Records{P1: 21, P2: 13}) {
		t.Errorf("Load = %+v, %v", got, err)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.txt")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileStore(path).Load()
	if err == nil {
		t.Error("corrupt file should report an error")
	}
	if got != (Records{}) {
		t.Errorf("corrupt file should load zero records, got %+v", got)
	}
}

func TestOpenWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.txt")
	s, err := Open(path, "flapfight-test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	fs, ok := s.(*FileStore)
	if !ok || fs.Path() != path {
		t.Errorf("Open with a path should return a FileStore at %s, got %T", path, s)
	}
}

func TestMemoryStore(t *testing.T) {
	s := &MemoryStore{}
	if r, err := s.Load(); err != nil || r != (Records{}) {
		t.Errorf("empty store Load = %+v, %v", r, err)
	}
	if err := s.Save(Records{P1: 1, P2: 2}); err != nil {
		t.Fatal(err)
	}
	if r, _ := s.Load(); r != (Records{P1: 1, P2: 2}) || s.Saves != 1 {
		t.Errorf("after Save: %+v saves=%d", r, s.Saves)
	}
}
