package llm

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"context"
)

// TranscriptProvider is a decorator that appends a human-readable record
// of every request and response to a writer. It is the debugging aid that
// replaces structured event storage: the app keeps no database, so the
// transcript file (ETHIOLEARN_LLM_TRANSCRIPT) is the only place a request
// can be inspected after the fact.
type TranscriptProvider struct {
	inner Provider

	mu sync.Mutex
	w  io.Writer
}

// WithTranscript wraps a Provider so every call is appended to w.
func WithTranscript(p Provider, w io.Writer) Provider {
	return &TranscriptProvider{inner: p, w: w}
}

func (t *TranscriptProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := t.inner.Generate(ctx, req)
	latency := time.Since(start)

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.w, "=== %s  purpose=%s  model=%s  latency=%dms\n",
		start.Format(time.RFC3339), PurposeFrom(ctx), t.inner.ModelID(), latency.Milliseconds())
	fmt.Fprint(t.w, formatRequest(req))

	switch {
	case err != nil:
		fmt.Fprintf(t.w, "[error]\n%v\n\n", err)
	case resp != nil:
		fmt.Fprintf(t.w, "[response tokens=%d/%d]\n%s\n\n",
			resp.Usage.InputTokens, resp.Usage.OutputTokens, string(resp.Content))
	}

	return resp, err
}

func (t *TranscriptProvider) ModelID() string {
	return t.inner.ModelID()
}

func formatRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n", m.Role, m.Text)
	}

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
