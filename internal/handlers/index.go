package handlers

import (
	"net/http"
)

// indexHTML is a small single-page tester for the conversion API: paste HTML,
// convert it, inspect the numbered Markdown and the per-element mappings.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>HTML to Markdown mapper</title>
  <style>
    :root {
      color-scheme: dark;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 1100px;
      line-height: 1.6;
      background: #050b18;
      color: #e4ecff;
    }
    h1 {
      color: #fff;
      font-size: 1.6rem;
    }
    textarea, pre {
      width: 100%;
      box-sizing: border-box;
      background: #0f172a;
      color: #cbd5f5;
      border: 1px solid rgba(99, 102, 241, 0.3);
      border-radius: 10px;
      padding: 1rem;
      font-family: 'SFMono-Regular', Consolas, Menlo, monospace;
      font-size: 0.9rem;
    }
    textarea {
      min-height: 160px;
      resize: vertical;
    }
    pre {
      white-space: pre-wrap;
      overflow-x: auto;
      min-height: 60px;
    }
    button {
      background: #4f46e5;
      color: #fff;
      border: none;
      border-radius: 8px;
      padding: 0.6rem 1.4rem;
      margin: 0.8rem 0.4rem 0.8rem 0;
      font-size: 1rem;
      cursor: pointer;
    }
    button:hover {
      background: #6366f1;
    }
    .meta {
      color: #94a3b8;
      font-size: 0.9rem;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 0.85rem;
    }
    th, td {
      border: 1px solid rgba(148, 163, 184, 0.25);
      padding: 0.4rem 0.6rem;
      text-align: left;
      vertical-align: top;
    }
  </style>
</head>
<body>
  <h1>HTML to Markdown mapper</h1>
  <p class="meta">Converts HTML to numbered Markdown and maps each top-level element to its output lines.</p>
  <textarea id="html" placeholder="&lt;h1&gt;Title&lt;/h1&gt;&lt;p&gt;Hello &lt;b&gt;world&lt;/b&gt;&lt;/p&gt;"></textarea>
  <div>
    <button onclick="convert()">Convert</button>
    <label class="meta">Line: <input id="line" type="number" min="1" style="width:5rem"></label>
    <button onclick="findByLine()">Find element</button>
  </div>
  <h2>Markdown</h2>
  <pre id="markdown"></pre>
  <h2>Mappings</h2>
  <div id="mappings"></div>
  <h2>Lookup result</h2>
  <pre id="lookup"></pre>
  <script>
    async function convert() {
      const res = await fetch('/api/convert', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({html_text: document.getElementById('html').value})
      });
      const data = await res.json();
      if (!res.ok) {
        document.getElementById('markdown').textContent = data.error || 'conversion failed';
        return;
      }
      document.getElementById('markdown').textContent = data.markdown;
      const rows = data.mappings.map(m =>
        '<tr><td>' + m.html_tag + '</td><td>' + m.markdown_line_start + '-' + m.markdown_line_end +
        '</td><td><code>' + m.html_element_id + '</code></td></tr>').join('');
      document.getElementById('mappings').innerHTML =
        '<table><tr><th>Tag</th><th>Lines</th><th>ID</th></tr>' + rows + '</table>';
    }
    async function findByLine() {
      const line = document.getElementById('line').value;
      const res = await fetch('/api/mappings/line/' + line);
      const data = await res.json();
      document.getElementById('lookup').textContent = JSON.stringify(data, null, 2);
    }
  </script>
</body>
</html>`

// IndexHandler serves the embedded tester page.
type IndexHandler struct{}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// ServeHTTP serves the tester page.
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexHTML))
}
