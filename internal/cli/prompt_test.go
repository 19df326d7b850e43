package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/tacogips/embedscript/internal/template/compiler"
	"github.com/tacogips/embedscript/internal/template/model"
)

// scripted answers prompts in order.
type scripted struct {
	t       *testing.T
	answers []interface{}
	asked   []string
}

func (s *scripted) ask(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	s.t.Helper()
	switch q := p.(type) {
	case *survey.Input:
		s.asked = append(s.asked, q.Message)
	case *survey.Confirm:
		s.asked = append(s.asked, q.Message)
	}
	if len(s.answers) == 0 {
		s.t.Fatalf("unexpected prompt %q", s.asked[len(s.asked)-1])
	}
	next := s.answers[0]
	s.answers = s.answers[1:]

	if err, ok := next.(error); ok {
		return err
	}
	switch r := response.(type) {
	case *string:
		*r = next.(string)
	case *bool:
		*r = next.(bool)
	default:
		s.t.Fatalf("unsupported response type %T", response)
	}
	return nil
}

func useAnswers(t *testing.T, answers ...interface{}) *scripted {
	t.Helper()
	s := &scripted{t: t, answers: answers}
	old := askOne
	askOne = s.ask
	t.Cleanup(func() { askOne = old })
	return s
}

// fullAnswers fills every prompt of PromptForMessage.
func fullAnswers() []interface{} {
	return []interface{}{
		"",                          // content
		"Hello",                     // title
		"Body",                      // description
		"https://example.com",       // url
		"#FF0000",                   // color
		"",                          // image
		"https://example.com/t.png", // thumbnail
		"foot",                      // footer
		"",                          // author
		false,                       // timestamp
		true, "A", "1", true,        // field
		false,
		true, "Go", "https://example.com/go", "", // button
		false,
	}
}

func TestPromptForMessage(t *testing.T) {
	captureOutput(t)
	s := useAnswers(t, fullAnswers()...)

	draft, err := PromptForMessage()
	if err != nil {
		t.Fatalf("PromptForMessage() unexpected error: %v", err)
	}

	color := 0xFF0000
	want := &Draft{
		Card: &model.Card{
			Title:       "Hello",
			Description: "Body",
			URL:         "https://example.com",
			Color:       &color,
			Thumbnail:   &model.Media{URL: "https://example.com/t.png"},
			Footer:      &model.Footer{Text: "foot"},
			Fields:      []model.Field{{Name: "A", Value: "1", Inline: true}},
		},
		Buttons: []model.LinkButton{{Label: "Go", URL: "https://example.com/go"}},
	}
	if diff := cmp.Diff(want, draft); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
	if len(s.answers) != 0 {
		t.Errorf("%d answer(s) left unused", len(s.answers))
	}
}

func TestPromptForMessage_ContentOnly(t *testing.T) {
	captureOutput(t)
	useAnswers(t, "just text", "", "", "", "", "", "", "", "", false, false, false)

	draft, err := PromptForMessage()
	if err != nil {
		t.Fatalf("PromptForMessage() unexpected error: %v", err)
	}
	if draft.Content != "just text" {
		t.Errorf("content = %q", draft.Content)
	}
	if draft.Card != nil {
		t.Errorf("card = %+v, want nil", draft.Card)
	}
}

func TestPromptForMessage_Interrupted(t *testing.T) {
	captureOutput(t)
	interrupt := errors.New("interrupt")
	useAnswers(t, "", interrupt)

	if _, err := PromptForMessage(); !errors.Is(err, interrupt) {
		t.Errorf("PromptForMessage() error = %v, want interrupt", err)
	}
}

func TestOptionalURL(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantErr bool
	}{
		{name: "empty", input: ""},
		{name: "blank", input: "   "},
		{name: "https", input: "https://example.com/a.png"},
		{name: "http", input: "http://example.com"},
		{name: "no scheme", input: "example.com", wantErr: true},
		{name: "ftp", input: "ftp://example.com", wantErr: true},
		{name: "not a string", input: 3, wantErr: true},
	}

	check := optionalURL("image.url")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := check(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("optionalURL(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestOptionalColor(t *testing.T) {
	tests := []struct {
		input   interface{}
		wantErr bool
	}{
		{input: ""},
		{input: "#5865F2"},
		{input: "#fff"},
		{input: "red", wantErr: true},
		{input: "#GG0000", wantErr: true},
		{input: false, wantErr: true},
	}

	for _, tt := range tests {
		err := optionalColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("optionalColor(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestRunNew(t *testing.T) {
	t.Cleanup(func() { newForce = false })

	t.Run("writes a compiling template", func(t *testing.T) {
		captureOutput(t)
		useAnswers(t, fullAnswers()...)
		path := filepath.Join(t.TempDir(), "hello.embed")

		if err := runNew(newCmd, []string{path}); err != nil {
			t.Fatalf("runNew() unexpected error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		text := strings.TrimSpace(string(data))
		if !strings.HasPrefix(text, "{embed}") {
			t.Errorf("template = %q", text)
		}

		result, err := compiler.New(compiler.DefaultOptions()).Compile(text, nil, false)
		if err != nil {
			t.Fatalf("written template does not compile: %v", err)
		}
		if result.Card.Title != "Hello" || len(result.Buttons) != 1 {
			t.Errorf("compiled = %+v", result.Artifact)
		}
	})

	t.Run("prints without a file", func(t *testing.T) {
		out, _ := captureOutput(t)
		useAnswers(t, fullAnswers()...)

		if err := runNew(newCmd, nil); err != nil {
			t.Fatalf("runNew() unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "$v{title: Hello}") {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		captureOutput(t)
		path := filepath.Join(t.TempDir(), "exists.embed")
		if err := os.WriteFile(path, []byte("$v{title: old}"), 0644); err != nil {
			t.Fatal(err)
		}

		err := runNew(newCmd, []string{path})
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Errorf("runNew() error = %v", err)
		}
	})
}
