package decode_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/task-manager/pkg/decode"
)

func TestObject(t *testing.T) {
	obj, err := decode.Object(strings.NewReader(`{"title":"a","count":3,"ratio":0.5,"tags":[1,2.5],"meta":{"n":7}}`))
	if err != nil {
		t.Fatalf("Object() error = %v", err)
	}

	if obj["title"] != "a" {
		t.Errorf("title = %v, want a", obj["title"])
	}
	if obj["count"] != int64(3) {
		t.Errorf("count = %#v, want int64(3)", obj["count"])
	}
	if obj["ratio"] != 0.5 {
		t.Errorf("ratio = %#v, want 0.5", obj["ratio"])
	}

	tags := obj["tags"].([]any)
	if tags[0] != int64(1) || tags[1] != 2.5 {
		t.Errorf("tags = %#v", tags)
	}

	meta := obj["meta"].(map[string]any)
	if meta["n"] != int64(7) {
		t.Errorf("meta.n = %#v, want int64(7)", meta["n"])
	}
}

func TestObject_Rejects(t *testing.T) {
	inputs := map[string]string{
		"empty":    ``,
		"null":     `null`,
		"array":    `[{"a":1}]`,
		"string":   `"task"`,
		"number":   `42`,
		"broken":   `{"a":`,
		"trailing": `{"a":1} {"b":2}`,
		"overflow": `{"n":1e400}`,
		"nested":   `{"meta":{"tags":[1,-1e999]}}`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := decode.Object(strings.NewReader(input))
			if !errors.Is(err, decode.ErrNotObject) {
				t.Errorf("Object(%q) error = %v, want ErrNotObject", input, err)
			}
		})
	}
}

func TestObject_EmptyObject(t *testing.T) {
	obj, err := decode.Object(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("Object() error = %v", err)
	}
	if len(obj) != 0 {
		t.Errorf("len = %d, want 0", len(obj))
	}
}

type statusCommand struct {
	Status string `json:"status"`
}

func TestFromMap(t *testing.T) {
	cmd, err := decode.FromMap[statusCommand](map[string]any{"status": "done", "extra": true})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if cmd.Status != "done" {
		t.Errorf("Status = %q, want done", cmd.Status)
	}
}

func TestFromMap_TypeMismatch(t *testing.T) {
	if _, err := decode.FromMap[statusCommand](map[string]any{"status": 7}); err == nil {
		t.Error("FromMap() should fail when status is a number")
	}
}

func TestNormalize(t *testing.T) {
	v, err := decode.Normalize([]any{json.Number("12"), json.Number("1.5"), map[string]any{"n": json.Number("-3")}})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	got := v.([]any)
	if got[0] != int64(12) || got[1] != 1.5 {
		t.Errorf("Normalize() = %#v", got)
	}
	if got[2].(map[string]any)["n"] != int64(-3) {
		t.Errorf("nested n = %#v, want int64(-3)", got[2])
	}
}

func TestNormalize_OutOfRange(t *testing.T) {
	if _, err := decode.Normalize(map[string]any{"n": json.Number("1e400")}); err == nil {
		t.Error("Normalize(1e400) error = nil, want out of range")
	}
}
