package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/heartmarshall/wordlookup/internal/lookup"
)

func strPtr(s string) *string { return &s }

func render(t *testing.T, v lookup.View) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderPage(&buf, v); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	return buf.String()
}

func TestRenderPage_Idle(t *testing.T) {
	t.Parallel()

	out := render(t, lookup.View{})

	for _, want := range []string{"Dictionary App", `placeholder="Enter a word"`, ">Search<", ">Clear<"} {
		if !strings.Contains(out, want) {
			t.Errorf("idle page missing %q", want)
		}
	}
	for _, unwanted := range []string{"lookup-error", "lookup-result", "<audio"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("idle page should not contain %q", unwanted)
		}
	}
}

func TestRenderPage_Error(t *testing.T) {
	t.Parallel()

	out := render(t, lookup.View{
		Query:        "zzzxcv",
		State:        lookup.StateError,
		ErrorMessage: strPtr("Sorry, No Data Found"),
	})

	if !strings.Contains(out, "color: red") || !strings.Contains(out, "Sorry, No Data Found") {
		t.Errorf("error block missing:\n%s", out)
	}
	if !strings.Contains(out, `value="zzzxcv"`) {
		t.Error("input should keep the query")
	}
	if strings.Contains(out, "lookup-result") {
		t.Error("error page should not show a result")
	}
}

func TestRenderPage_SuccessWithAudio(t *testing.T) {
	t.Parallel()

	out := render(t, lookup.View{
		Query: "hello",
		State: lookup.StateSuccess,
		Result: &lookup.Result{
			DefinitionText: "used as a greeting",
			AudioURL:       strPtr("https://x/hello.mp3"),
		},
	})

	for _, want := range []string{
		"Answer: ",
		"used as a greeting",
		"Pronunciation:",
		`<source src="https://x/hello.mp3" type="audio/mp3">`,
		"Your browser does not support the audio element.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("success page missing %q", want)
		}
	}
	if strings.Contains(out, "lookup-error") {
		t.Error("success page should not show an error")
	}
}

func TestRenderPage_SuccessWithoutAudio(t *testing.T) {
	t.Parallel()

	out := render(t, lookup.View{
		State:  lookup.StateSuccess,
		Result: &lookup.Result{DefinitionText: "a definition"},
	})

	if !strings.Contains(out, "a definition") {
		t.Error("definition missing")
	}
	if strings.Contains(out, "<audio") {
		t.Error("audio player should be omitted without a URL")
	}
}

func TestRenderPage_EscapesContent(t *testing.T) {
	t.Parallel()

	out := render(t, lookup.View{
		Query:  `"><script>alert(1)</script>`,
		Result: &lookup.Result{DefinitionText: "<b>bold</b>"},
	})

	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("query must be escaped")
	}
	if strings.Contains(out, "<b>bold</b>") {
		t.Error("definition must be escaped")
	}
}

func TestRenderPage_UnsafeAudioURL(t *testing.T) {
	t.Parallel()

	out := render(t, lookup.View{
		Result: &lookup.Result{DefinitionText: "d", AudioURL: strPtr("javascript:alert(1)")},
	})

	if strings.Contains(out, "javascript:alert(1)") {
		t.Error("unsafe audio URL must be sanitized")
	}
}
