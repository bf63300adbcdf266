package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"html2md-mapper/internal/mapping"
)

// fakeEngine returns a scripted result and records inputs.
type fakeEngine struct {
	mu     sync.Mutex
	result mapping.Result
	inputs []string
}

func (f *fakeEngine) ConvertWithMapping(htmlText string) mapping.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, htmlText)
	return f.result
}

func (f *fakeEngine) setResult(r mapping.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.result = r
}

func (f *fakeEngine) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inputs)
}

func convertedResult(mappings ...mapping.Mapping) mapping.Result {
	return mapping.Result{
		MarkdownResult:     "[001] # Title",
		HTMLWithIDs:        `<h1 data-mapping-id="abc">Title</h1>`,
		Mappings:           mappings,
		OriginalHTMLLength: 20,
		Status:             mapping.StatusConverted,
	}
}

func TestConverterService_ConvertHTML(t *testing.T) {
	tests := []struct {
		name           string
		req            ConvertRequest
		engineResult   mapping.Result
		wantErr        bool
		wantValidation bool
		wantConvErr    bool
		wantEngineHit  bool
	}{
		{
			name:          "successful conversion",
			req:           ConvertRequest{HTMLText: "<h1>Title</h1>"},
			engineResult:  convertedResult(mapping.Mapping{HTMLTag: "h1", MarkdownLineStart: 1, MarkdownLineEnd: 1}),
			wantEngineHit: true,
		},
		{
			name:           "empty input rejected before the engine",
			req:            ConvertRequest{HTMLText: ""},
			wantErr:        true,
			wantValidation: true,
		},
		{
			name:           "whitespace-only input rejected before the engine",
			req:            ConvertRequest{HTMLText: "   \n\t"},
			wantErr:        true,
			wantValidation: true,
		},
		{
			name:          "engine error result surfaces as ErrConversionFailed",
			req:           ConvertRequest{HTMLText: "<p>x</p>"},
			engineResult:  mapping.Result{Status: mapping.StatusError, Error: "parse html: boom"},
			wantErr:       true,
			wantConvErr:   true,
			wantEngineHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{result: tt.engineResult}
			svc := NewConverterService(engine)

			resp, err := svc.ConvertHTML(context.Background(), tt.req)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ConvertHTML() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantValidation {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("ConvertHTML() error = %v, want ValidationError", err)
				}
			}
			if tt.wantConvErr && !errors.Is(err, ErrConversionFailed) {
				t.Errorf("ConvertHTML() error = %v, want ErrConversionFailed", err)
			}
			if gotHit := engine.callCount() > 0; gotHit != tt.wantEngineHit {
				t.Errorf("engine called = %v, want %v", gotHit, tt.wantEngineHit)
			}
			if !tt.wantErr && resp.Result.Status != mapping.StatusConverted {
				t.Errorf("ConvertHTML() result status = %v, want converted", resp.Result.Status)
			}
		})
	}
}

func TestConverterService_FindByLine(t *testing.T) {
	engine := &fakeEngine{result: convertedResult(
		mapping.Mapping{HTMLTag: "h1", MarkdownLineStart: 1, MarkdownLineEnd: 1},
		mapping.Mapping{HTMLTag: "p", MarkdownLineStart: 3, MarkdownLineEnd: 4},
	)}
	svc := NewConverterService(engine)
	ctx := context.Background()

	// Before any conversion the retained list is empty.
	resp, err := svc.FindByLine(ctx, 1)
	if err != nil {
		t.Fatalf("FindByLine() error = %v", err)
	}
	if resp.Found {
		t.Error("FindByLine() before conversion should not find anything")
	}

	if _, err := svc.ConvertHTML(ctx, ConvertRequest{HTMLText: "<h1>Title</h1><p>x</p>"}); err != nil {
		t.Fatalf("ConvertHTML() error = %v", err)
	}

	tests := []struct {
		name      string
		line      int
		wantTag   string
		wantFound bool
	}{
		{name: "first element", line: 1, wantTag: "h1", wantFound: true},
		{name: "gap line", line: 2, wantFound: false},
		{name: "second element", line: 4, wantTag: "p", wantFound: true},
		{name: "beyond mapped range", line: 9, wantFound: false},
		{name: "zero line", line: 0, wantFound: false},
		{name: "negative line", line: -1, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.FindByLine(ctx, tt.line)
			if err != nil {
				t.Fatalf("FindByLine() error = %v", err)
			}
			if resp.Found != tt.wantFound {
				t.Fatalf("FindByLine(%d) found = %v, want %v", tt.line, resp.Found, tt.wantFound)
			}
			if resp.Found && resp.Mapping.HTMLTag != tt.wantTag {
				t.Errorf("FindByLine(%d) tag = %q, want %q", tt.line, resp.Mapping.HTMLTag, tt.wantTag)
			}
		})
	}
}

func TestConverterService_FailedConversionKeepsMappings(t *testing.T) {
	engine := &fakeEngine{result: convertedResult(
		mapping.Mapping{HTMLTag: "h1", MarkdownLineStart: 1, MarkdownLineEnd: 1},
	)}
	svc := NewConverterService(engine)
	ctx := context.Background()

	if _, err := svc.ConvertHTML(ctx, ConvertRequest{HTMLText: "<h1>Title</h1>"}); err != nil {
		t.Fatalf("ConvertHTML() error = %v", err)
	}

	engine.setResult(mapping.Result{Status: mapping.StatusError, Error: "render document: boom"})
	if _, err := svc.ConvertHTML(ctx, ConvertRequest{HTMLText: "<p>bad</p>"}); !errors.Is(err, ErrConversionFailed) {
		t.Fatalf("ConvertHTML() error = %v, want ErrConversionFailed", err)
	}

	resp, err := svc.FindByLine(ctx, 1)
	if err != nil {
		t.Fatalf("FindByLine() error = %v", err)
	}
	if !resp.Found || resp.Mapping.HTMLTag != "h1" {
		t.Errorf("previous mappings lost after failed conversion: %+v", resp)
	}
}

func TestConverterService_NewConversionReplacesMappings(t *testing.T) {
	engine := &fakeEngine{result: convertedResult(
		mapping.Mapping{HTMLTag: "h1", MarkdownLineStart: 1, MarkdownLineEnd: 1},
	)}
	svc := NewConverterService(engine)
	ctx := context.Background()

	if _, err := svc.ConvertHTML(ctx, ConvertRequest{HTMLText: "<h1>a</h1>"}); err != nil {
		t.Fatalf("ConvertHTML() error = %v", err)
	}

	engine.setResult(convertedResult(
		mapping.Mapping{HTMLTag: "ul", MarkdownLineStart: 1, MarkdownLineEnd: 2},
	))
	if _, err := svc.ConvertHTML(ctx, ConvertRequest{HTMLText: "<ul><li>x</li></ul>"}); err != nil {
		t.Fatalf("ConvertHTML() error = %v", err)
	}

	resp, err := svc.FindByLine(ctx, 1)
	if err != nil {
		t.Fatalf("FindByLine() error = %v", err)
	}
	if !resp.Found || resp.Mapping.HTMLTag != "ul" {
		t.Errorf("FindByLine(1) = %+v, want the replacing ul mapping", resp)
	}
}

func TestConverterService_ConcurrentAccess(t *testing.T) {
	engine := &fakeEngine{result: convertedResult(
		mapping.Mapping{HTMLTag: "p", MarkdownLineStart: 1, MarkdownLineEnd: 1},
	)}
	svc := NewConverterService(engine)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.ConvertHTML(ctx, ConvertRequest{HTMLText: "<p>x</p>"})
			_, _ = svc.FindByLine(ctx, 1)
		}()
	}
	wg.Wait()
}
